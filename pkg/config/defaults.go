package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "bookwell"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSlotGranularityMin = 30
	DefaultCalendarStartHour  = 8
	DefaultCalendarEndHour    = 22
	DefaultSlotHeightPx       = 40
	DefaultDurationMin        = 30
	DefaultSlotLockTTL        = 10 * time.Second

	DefaultAppointmentsBaseURL = "http://localhost:8081"
	DefaultWorkingHoursBaseURL = "http://localhost:8082"

	DefaultPaginationLimit = 100
)
