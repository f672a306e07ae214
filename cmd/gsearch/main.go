package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"gsearch/internal/config"
	"gsearch/internal/controllers"
	"gsearch/internal/logger"
	"gsearch/internal/recent"
	"gsearch/internal/views"
)

const (
	AppName    = "GSearch"
	AppID      = "com.gsearch.builder"
	AppVersion = "1.0.0"
)

const defaultConfigFile = "gsearch.toml"

func main() {
	configPath := os.Getenv("GSEARCH_CONFIG")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	conf, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger, err := logger.New(conf.Logger)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(960, 800))
	window.CenterOnScreen()

	store := recent.NewStore(conf.RecentFile, conf.MaxRecent)

	controller := controllers.NewMainController(fyneApp, window, store, appLogger)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	appLogger.Info("application starting", map[string]interface{}{
		"version":     AppVersion,
		"recent_file": conf.RecentFile,
		"max_recent":  conf.MaxRecent,
	})

	controller.Start()
	setupSignalHandling(fyneApp, appLogger)

	view.Show()
	fyneApp.Run()

	appLogger.Info("application terminated", nil)
}

// setupSignalHandling closes the application cleanly on SIGINT/SIGTERM.
func setupSignalHandling(fyneApp fyne.App, appLogger logger.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		appLogger.Info("system signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		fyne.Do(fyneApp.Quit)
	}()
}
