package config

import "time"

const (
	// Session history
	MaxHistoryTurns      = 20
	TrailingHistoryTurns = 8
	SessionTTL           = 24 * time.Hour

	// Search
	DefaultSearchLimit = 5

	// Chat responses
	ResponseProductLimit = 3
	ContextProductLimit  = 5

	// External generation
	GeneratorTimeout = 30 * time.Second

	// HTTP server
	RequestTimeout  = 60 * time.Second
	ShutdownTimeout = 10 * time.Second
)
