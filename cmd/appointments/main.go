package main

import (
	"os"

	"bookwell/internal/appointments/events"
	"bookwell/internal/appointments/handler"
	"bookwell/internal/appointments/repository"
	"bookwell/internal/appointments/service"
	"bookwell/internal/appointments/validator"
	whrepository "bookwell/internal/workinghours/repository"
	"bookwell/pkg/app"
	"bookwell/pkg/config"
	kafka_config "bookwell/pkg/kafka/config"
)

const ServiceName = "appointments"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Appointments service")
	appointmentService, publisher := initServices(cfg)
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				cfg.Log.Warn("Failed to close event publisher", "error", err)
			}
		}()
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewAppointmentHandler(appointmentService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.AppointmentService, *events.Publisher) {
	appointmentValidator := validator.NewAppointmentValidator(cfg.Log)
	appointmentRepo := repository.NewMongoAppointmentRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)
	hoursRepo := whrepository.NewMongoWorkingHoursRepository(cfg)

	var publisher *events.Publisher
	var sink service.EventSink
	if os.Getenv(kafka_config.EnvKafkaBrokers) != "" {
		var err error
		publisher, err = events.NewPublisher(kafka_config.Load(), cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
		}
		sink = publisher
		cfg.Log.Info("Appointment event publishing enabled", "topic", events.Topic)
	} else {
		cfg.Log.Info("Appointment event publishing disabled (no Kafka brokers configured)")
	}

	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		lockRepo,
		hoursRepo,
		sink,
		appointmentValidator,
		cfg,
	)

	cfg.Log.Info("Appointment service initialized", "database", cfg.MongoDatabaseName)
	return appointmentService, publisher
}
