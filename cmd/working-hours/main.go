package main

import (
	"bookwell/internal/workinghours/handler"
	"bookwell/internal/workinghours/repository"
	"bookwell/internal/workinghours/service"
	"bookwell/internal/workinghours/validator"
	"bookwell/pkg/app"
	"bookwell/pkg/config"
)

const ServiceName = "working-hours"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Working Hours service")
	workingHoursService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewWorkingHoursHandler(workingHoursService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.WorkingHoursService {
	workingHoursValidator := validator.NewWorkingHoursValidator(cfg.Log)
	workingHoursRepo := repository.NewMongoWorkingHoursRepository(cfg)
	workingHoursService := service.NewWorkingHoursService(
		workingHoursRepo,
		workingHoursValidator,
		cfg,
	)

	cfg.Log.Info("Working hours service initialized", "database", cfg.MongoDatabaseName)
	return workingHoursService
}
