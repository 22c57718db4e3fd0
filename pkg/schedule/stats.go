package schedule

import (
	"sort"

	"bookwell/pkg/model"
)

// UnknownServiceLabel stands in for appointments whose service reference
// cannot be resolved. Aggregation never fails on such records.
const UnknownServiceLabel = "Unknown Service"

// TopServicesLimit bounds the top-services ranking.
const TopServicesLimit = 5

// DateRange is an inclusive calendar-date range. Dates are "YYYY-MM-DD",
// which compares correctly as plain strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

func (r DateRange) Label() string {
	return r.Start + " - " + r.End
}

type ServiceStat struct {
	ServiceID string `json:"service_id,omitempty"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Revenue   int64  `json:"revenue"`
}

type TimeSeriesPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Count   int    `json:"count"`
}

// Snapshot is a fully derived statistics record for one appointment subset.
// It is recomputed on every query and holds no state beyond its inputs.
type Snapshot struct {
	RangeLabel     string               `json:"range_label"`
	TotalCount     int                  `json:"total_count"`
	TotalRevenue   int64                `json:"total_revenue"`
	AverageValue   int64                `json:"average_value"`
	CompletionRate float64              `json:"completion_rate"`
	StatusCounts   map[model.Status]int `json:"status_counts"`
	TopServices    []ServiceStat        `json:"top_services"`
}

// Aggregate reduces an appointment set to a statistics snapshot for the given
// range. An empty statusFilter keeps all statuses. Prices are minor currency
// units, so the average is integer division.
//
// The completion rate measures completion among appointments that reached a
// decision point: Completed / (count - Cancelled - Pending) * 100.
func Aggregate(appts []*model.Appointment, r DateRange, statusFilter model.Status) *Snapshot {
	snap := &Snapshot{
		RangeLabel:   r.Label(),
		StatusCounts: make(map[model.Status]int, len(model.AllStatuses)),
	}
	for _, s := range model.AllStatuses {
		snap.StatusCounts[s] = 0
	}

	serviceOrder := []string{}
	services := map[string]*ServiceStat{}

	for _, a := range appts {
		if !r.Contains(a.Date) {
			continue
		}
		if statusFilter != "" && a.Status != statusFilter {
			continue
		}

		snap.TotalCount++
		snap.TotalRevenue += a.Price
		snap.StatusCounts[a.Status]++

		key := a.ServiceID
		label := a.ServiceLabel
		if label == "" {
			label = UnknownServiceLabel
		}
		if key == "" {
			key = label
		}
		stat, ok := services[key]
		if !ok {
			stat = &ServiceStat{ServiceID: a.ServiceID, Label: label}
			services[key] = stat
			serviceOrder = append(serviceOrder, key)
		}
		stat.Count++
		stat.Revenue += a.Price
	}

	if snap.TotalCount > 0 {
		snap.AverageValue = snap.TotalRevenue / int64(snap.TotalCount)
	}

	decided := snap.TotalCount - snap.StatusCounts[model.StatusCancelled] - snap.StatusCounts[model.StatusPending]
	if decided > 0 {
		snap.CompletionRate = float64(snap.StatusCounts[model.StatusCompleted]) / float64(decided) * 100
	}

	// Stable sort keeps first-seen order between equal counts.
	top := make([]ServiceStat, 0, len(serviceOrder))
	for _, key := range serviceOrder {
		top = append(top, *services[key])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > TopServicesLimit {
		top = top[:TopServicesLimit]
	}
	snap.TopServices = top

	return snap
}

// TimeSeries groups the range's appointments by calendar date for charting,
// sorted ascending by date.
func TimeSeries(appts []*model.Appointment, r DateRange) []TimeSeriesPoint {
	byDate := map[string]*TimeSeriesPoint{}
	for _, a := range appts {
		if !r.Contains(a.Date) {
			continue
		}
		p, ok := byDate[a.Date]
		if !ok {
			p = &TimeSeriesPoint{Date: a.Date}
			byDate[a.Date] = p
		}
		p.Revenue += a.Price
		p.Count++
	}

	points := make([]TimeSeriesPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
