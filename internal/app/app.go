// Package app orchestrates the client's use cases on top of the resource
// gateways: authentication flows, catalog browsing, purchase gating,
// checkout, and dashboard aggregation.
package app

import (
	"log/slog"

	"coursehub/pkg/ai"
	"coursehub/pkg/api"
	"coursehub/pkg/session"
)

const (
	// Fixed page sizes per view.
	courseListPageSize = 9
	featuredPageSize   = 6
)

// App wires the gateways, session manager, and assistant together.
type App struct {
	api       *api.Client
	sessions  *session.Manager
	assistant *ai.Assistant
	log       *slog.Logger
}

// Config collects the collaborators for New. Assistant may be nil, in which
// case AI-backed features report the missing key instead of failing hard.
type Config struct {
	API       *api.Client
	Sessions  *session.Manager
	Assistant *ai.Assistant
	Logger    *slog.Logger
}

func New(cfg Config) (*App, error) {
	if cfg.API == nil {
		return nil, errNilAPI
	}
	if cfg.Sessions == nil {
		return nil, errNilSessions
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		api:       cfg.API,
		sessions:  cfg.Sessions,
		assistant: cfg.Assistant,
		log:       logger,
	}, nil
}

// Sessions exposes the manager so the transport's TokenSource and the views
// share one session snapshot mechanism.
func (a *App) Sessions() *session.Manager {
	return a.sessions
}
