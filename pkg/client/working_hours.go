package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"bookwell/pkg/model"
)

type WorkingHoursClient struct {
	httpClient *HttpClient
}

func NewWorkingHoursClient(baseURL string) *WorkingHoursClient {
	return &WorkingHoursClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *WorkingHoursClient) GetWeek(staffID string) (*Response, error) {
	return c.httpClient.GET("/api/v1/staff/" + url.PathEscape(staffID) + "/working-hours")
}

func (c *WorkingHoursClient) SetWeek(staffID string, body any) (*Response, error) {
	return c.httpClient.PUT("/api/v1/staff/"+url.PathEscape(staffID)+"/working-hours", body)
}

func (c *WorkingHoursClient) DecodeWeek(resp *Response) ([]*model.WorkingHours, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode working-hours wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var week []*model.WorkingHours
	if err := json.Unmarshal(wrapper.Data, &week); err != nil {
		return nil, fmt.Errorf("could not decode working-hours list:\n%+v\n%s", resp.ToString(), err)
	}
	return week, nil
}
