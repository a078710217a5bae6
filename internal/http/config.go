package http

import (
	"github.com/mrlokans/wordcache/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Engine   WordEngine
	Database Pinger

	// Task queue client (optional, enables batch inserts)
	TaskClient *tasks.Client

	// Per-client limit on dictionary-backed endpoints. Zero RPS disables it.
	RateLimitRPS   float64
	RateLimitBurst int

	// Application info
	Version string
}
