//go:build wireinject
// +build wireinject

package di

import (
	"TradeLite/pkg/config"
	"TradeLite/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideCache,

		// External clients
		ProvideIdentity,
		ProvideTextCompleters,

		// Core services
		ProvideMarketGenerator,
		ProvideFeedbackGenerator,
		ProvideRateLimiter,

		// HTTP layer
		ProvideHandlers,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
