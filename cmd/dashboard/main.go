package main

import (
	"bookwell/internal/dashboard/handler"
	"bookwell/internal/dashboard/service"
	"bookwell/pkg/app"
	"bookwell/pkg/config"
)

const ServiceName = "dashboard"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetSchedulingClients()

	cfg.Log.Info("Starting Dashboard service",
		"appointments_url", cfg.AppointmentsBaseURL,
		"working_hours_url", cfg.WorkingHoursBaseURL,
	)

	calendarService, analyticsService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewDashboardHandler(calendarService, analyticsService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.CalendarService, service.AnalyticsService) {
	appointmentSource := service.NewAppointmentSource(cfg.Client.Appointments)
	hoursSource := service.NewHoursSource(cfg.Client.WorkingHours)

	calendarService := service.NewCalendarService(appointmentSource, hoursSource, cfg)
	analyticsService := service.NewAnalyticsService(appointmentSource, cfg)

	cfg.Log.Info("Dashboard services initialized")
	return calendarService, analyticsService
}
