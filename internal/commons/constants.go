package commons

import "time"

const (
	ServiceName              = "item-service"
	ItemNameMaxLength        = 100
	ItemDescriptionMaxLength = 500
	AllowedRPS               = 10
	CORSMaxAge               = 300
	ServerIdleTimeout        = time.Minute
	ServerReadTimeout        = 10 * time.Second
	ServerWriteTimeout       = 30 * time.Second
	ServerShutdownTimeout    = 10 * time.Second
	HealthCheckTimeout       = 2 * time.Second
	StatsReportSchedule      = "@every 1m"
)
