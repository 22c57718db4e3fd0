package handler

import (
	"net/http"
	"strconv"

	"bookwell/internal/dashboard/service"
	apperrors "bookwell/pkg/errors"
	httputil "bookwell/pkg/http"
	"bookwell/pkg/logger"
	"bookwell/pkg/model"
	"bookwell/pkg/schedule"

	"github.com/julienschmidt/httprouter"
)

type DashboardHandler struct {
	calendar  service.CalendarService
	analytics service.AnalyticsService
	log       *logger.Logger
}

func NewDashboardHandler(calendar service.CalendarService, analytics service.AnalyticsService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		calendar:  calendar,
		analytics: analytics,
		log:       log,
	}
}

func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	days := 1
	if raw := query.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Days must be a number")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Calendar", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		days = parsed
	}

	view, err := h.calendar.View(r.Context(), query.Get("business_id"), query.Get("staff_id"), query.Get("date"), days)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Calendar", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Calendar", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Statistics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	dateRange := schedule.DateRange{
		Start: query.Get("from"),
		End:   query.Get("to"),
	}

	snap, err := h.analytics.Statistics(
		r.Context(),
		query.Get("business_id"),
		query.Get("staff_id"),
		dateRange,
		model.Status(query.Get("status")),
	)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Statistics", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, snap); err != nil {
		h.log.Error("failed to write success response", "handler", "Statistics", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) TimeSeries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	dateRange := schedule.DateRange{
		Start: query.Get("from"),
		End:   query.Get("to"),
	}

	points, err := h.analytics.TimeSeries(
		r.Context(),
		query.Get("business_id"),
		query.Get("staff_id"),
		dateRange,
	)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "TimeSeries", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, points); err != nil {
		h.log.Error("failed to write success response", "handler", "TimeSeries", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/calendar", h.Calendar)
	router.GET("/api/v1/statistics", h.Statistics)
	router.GET("/api/v1/timeseries", h.TimeSeries)
}
