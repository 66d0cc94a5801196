package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ShawnC4/valuelabs/internal/pkg/pkgconfig"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkglog"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgrouter"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgroutine"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config   pkgconfig.Config
	settings serverSettings

	// libraries
	uuid      pkguid.StringID
	uploadID  pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	app, err := build(cfg)
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

// build assembles the application from a loaded configuration.
func build(cfg pkgconfig.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		config: cfg,
	}

	steps := []func() error{
		app.initSettings,
		app.initLibraries,
		app.initHTTPServer,
		app.initModules,
		app.initClosers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			cancel()
			return nil, err
		}
	}

	return app, nil
}
