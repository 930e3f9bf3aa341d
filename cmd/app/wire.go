//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/kisan-advisor/internal/bootstrap"
	"github.com/yanqian/kisan-advisor/internal/domain/chat"
	"github.com/yanqian/kisan-advisor/internal/infra/config"
	httpiface "github.com/yanqian/kisan-advisor/internal/interface/http"
	"github.com/yanqian/kisan-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatConfig,
		provideWeatherConfig,
		provideMarketConfig,
		provideSourceCache,
		provideConversationRepository,
		provideWeatherSources,
		provideMarketSources,
		chat.NewService,
		provideWeatherService,
		provideMarketService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
