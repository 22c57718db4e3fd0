package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSlotGranularityMin    = "SLOT_GRANULARITY_MIN"
	EnvCalendarStartHour     = "CALENDAR_START_HOUR"
	EnvCalendarEndHour       = "CALENDAR_END_HOUR"
	EnvSlotHeightPx          = "SLOT_HEIGHT_PX"
	EnvDefaultDurationMin    = "DEFAULT_APPOINTMENT_DURATION_MIN"
	EnvStatusPolicy          = "STATUS_POLICY"
	EnvSlotLockTTL           = "SLOT_LOCK_TTL"

	EnvAppointmentsBaseURL = "APPOINTMENTS_BASE_URL"
	EnvWorkingHoursBaseURL = "WORKING_HOURS_BASE_URL"
)
