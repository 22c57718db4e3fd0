package model

import (
	"time"
)

type Appointment struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	BusinessID   string    `json:"business_id" bson:"business_id" validate:"required,mongodb"`
	StaffID      string    `json:"staff_id" bson:"staff_id" validate:"required,mongodb"`
	ClientID     string    `json:"client_id,omitempty" bson:"client_id,omitempty" validate:"omitempty,mongodb"`
	ClientName   string    `json:"client_name,omitempty" bson:"client_name,omitempty" validate:"omitempty,min=2,max=100"`
	ClientPhone  string    `json:"client_phone,omitempty" bson:"client_phone,omitempty" validate:"omitempty,e164"`
	ServiceID    string    `json:"service_id,omitempty" bson:"service_id,omitempty" validate:"omitempty,mongodb"`
	ServiceLabel string    `json:"service_label,omitempty" bson:"service_label,omitempty" validate:"omitempty,min=2,max=100"`
	Date         string    `json:"date" bson:"date" validate:"required,ymd_date"`
	StartTime    string    `json:"start_time" bson:"start_time" validate:"required,hhmm_time"`
	DurationMin  int       `json:"duration_min" bson:"duration_min" validate:"required,min=1,max=1440"`
	Price        int64     `json:"price" bson:"price" validate:"min=0"`
	Status       Status    `json:"status" bson:"status" validate:"required,oneof=pending confirmed arrived completed cancelled no_show"`
	Comment      string    `json:"comment,omitempty" bson:"comment,omitempty" validate:"omitempty,max=500"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type AppointmentUpdate struct {
	Date         string `json:"date,omitempty" validate:"omitempty,ymd_date"`
	StartTime    string `json:"start_time,omitempty" validate:"omitempty,hhmm_time"`
	DurationMin  *int   `json:"duration_min,omitempty" validate:"omitempty,min=1,max=1440"`
	Price        *int64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ServiceID    string `json:"service_id,omitempty" validate:"omitempty,mongodb"`
	ServiceLabel string `json:"service_label,omitempty" validate:"omitempty,min=2,max=100"`
	Comment      *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
