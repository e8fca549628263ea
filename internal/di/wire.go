//go:build wireinject
// +build wireinject

package di

import (
	"BioPulse/pkg/config"
	"BioPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Snapshot storage and sinks
		ProvideSnapshotStore,
		ProvideCacheSink,
		ProvideSinks,

		// Pipeline
		ProvideCollector,

		// HTTP
		ProvideDataHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
