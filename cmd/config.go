package cmd

import "time"

// Config carries the runtime settings of the fulfillment service, loaded from
// the environment by the application entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StrictTransitions switches the shipment state machine from the
	// permissive legacy behavior to strict lifecycle enforcement.
	StrictTransitions bool

	// ProgressionInterval is the tick period of the background progression
	// job.
	ProgressionInterval time.Duration

	// Dwell overrides; zero means the built-in default for that stage.
	PendingDwell        time.Duration
	PreparingDwell      time.Duration
	ShippedDwell        time.Duration
	InTransitDwell      time.Duration
	OutForDeliveryDwell time.Duration
}
