package config

const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./library.db"

	// DefaultAuditCleanupSchedule runs retention cleanup daily at 03:00
	DefaultAuditCleanupSchedule = "0 3 * * *"
)
