package orders

import "encore.dev/config"

type Config struct {
	TemporalHost      string
	TemporalNamespace string
	TaskQueue         string

	// RenewalLeadHours is how long before expiry a renewal invoice is issued.
	RenewalLeadHours int
	// ScheduleHorizonHours bounds the expiries picked up by the renewal cron.
	ScheduleHorizonHours int
	ScheduleBatchSize    int
}

var cfg = config.Load[*Config]()
