package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"cryptoRSI/config"
	"cryptoRSI/internal/adapters/binanceclient"
	"cryptoRSI/internal/adapters/logger"
	"cryptoRSI/internal/app"
	"cryptoRSI/internal/strategy/indicators"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Println(err)
		}
		return
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Debug(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Candle Fetcher (Binance Adapter)
	fetcher, err := binanceclient.New(binanceclient.Config{
		Market:  cfg.Market,
		BaseURL: cfg.BaseURL(),
		Logger:  appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "Failed to initialize Binance client")
		fmt.Println(err)
		return
	}

	// 4. Initialize Indicator
	priceMode := indicators.PriceModeStrict
	if !cfg.StrictPrices {
		priceMode = indicators.PriceModeLenient
	}
	rsi := indicators.NewRSI(indicators.RSIConfig{
		IndicatorConfig: indicators.IndicatorConfig{Period: cfg.Period},
		Overbought:      cfg.RSIOverbought,
		Oversold:        cfg.RSIOversold,
		StrictBounds:    cfg.StrictBounds,
		PriceMode:       priceMode,
	})

	// 5. Initialize Application Service
	service, err := app.NewRSIService(cfg, appLogger, fetcher, rsi, os.Stdout)
	if err != nil {
		appLogger.Error(ctx, err, "Failed to initialize RSI service")
		fmt.Println(err)
		return
	}

	// 6. Run once; failures are already reported on stdout
	_ = service.Run(ctx)
}
