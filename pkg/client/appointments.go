package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"bookwell/pkg/model"
)

type AppointmentsClient struct {
	httpClient *HttpClient
}

func NewAppointmentsClient(baseURL string) *AppointmentsClient {
	return &AppointmentsClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *AppointmentsClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/appointments", body)
}

func (c *AppointmentsClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/appointments/id/" + url.PathEscape(id))
}

func (c *AppointmentsClient) Search(businessID, staffID, fromDate, toDate string, limit int, offset int64) (*Response, error) {
	q := url.Values{}
	q.Set("business_id", businessID)
	if staffID != "" {
		q.Set("staff_id", staffID)
	}
	if fromDate != "" {
		q.Set("from", fromDate)
	}
	if toDate != "" {
		q.Set("to", toDate)
	}
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))

	return c.httpClient.GET("/api/v1/appointments/search?" + q.Encode())
}

func (c *AppointmentsClient) CheckSlot(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/appointments/check", body)
}

func (c *AppointmentsClient) DecodeAppointment(resp *Response) (*model.Appointment, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode appointment wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var appt model.Appointment
	if err := json.Unmarshal(wrapper.Data, &appt); err != nil {
		return nil, fmt.Errorf("could not decode appointment json:\n%+v\n%s", resp.ToString(), err)
	}
	return &appt, nil
}

func (c *AppointmentsClient) DecodeAppointments(resp *Response) ([]*model.Appointment, *Metadata, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
		Limit      int             `json:"limit"`
		Offset     int64           `json:"offset"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, nil, fmt.Errorf("could not decode paginated resp:\n%+v\n%s", resp.ToString(), err)
	}

	var appts []*model.Appointment
	if err := json.Unmarshal(wrapper.Data, &appts); err != nil {
		return nil, nil, fmt.Errorf("could not decode appointment list:\n%+v\n%s", resp.ToString(), err)
	}

	metadata := &Metadata{
		TotalCount: wrapper.TotalCount,
		Limit:      wrapper.Limit,
		Offset:     wrapper.Offset,
	}
	return appts, metadata, nil
}
