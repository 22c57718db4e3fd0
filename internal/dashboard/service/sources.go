package service

import (
	"fmt"

	"bookwell/pkg/client"
	"bookwell/pkg/model"
)

// AppointmentSource supplies decoded appointments for the dashboard views.
type AppointmentSource interface {
	RangeAppointments(businessID, staffID, fromDate, toDate string) ([]*model.Appointment, error)
}

// HoursSource supplies a staff member's weekly working hours.
type HoursSource interface {
	Week(staffID string) ([]*model.WorkingHours, error)
}

const sourcePageSize = 100

// clientAppointmentSource pages through the appointments service until the
// full range is loaded.
type clientAppointmentSource struct {
	client *client.AppointmentsClient
}

func NewAppointmentSource(c *client.AppointmentsClient) AppointmentSource {
	return &clientAppointmentSource{client: c}
}

func (s *clientAppointmentSource) RangeAppointments(businessID, staffID, fromDate, toDate string) ([]*model.Appointment, error) {
	var all []*model.Appointment
	var offset int64

	for {
		resp, err := s.client.Search(businessID, staffID, fromDate, toDate, sourcePageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch appointments: %w", err)
		}

		page, _, err := s.client.DecodeAppointments(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to decode appointments: %w", err)
		}

		all = append(all, page...)
		if len(page) < sourcePageSize {
			return all, nil
		}
		offset += sourcePageSize
	}
}

type clientHoursSource struct {
	client *client.WorkingHoursClient
}

func NewHoursSource(c *client.WorkingHoursClient) HoursSource {
	return &clientHoursSource{client: c}
}

func (s *clientHoursSource) Week(staffID string) ([]*model.WorkingHours, error) {
	resp, err := s.client.GetWeek(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch working hours: %w", err)
	}

	week, err := s.client.DecodeWeek(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode working hours: %w", err)
	}

	return week, nil
}
