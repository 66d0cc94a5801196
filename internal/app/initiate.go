package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ShawnC4/valuelabs/internal/pkg/pkgconfig"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgrouter"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgroutine"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkguid"
	"github.com/joho/godotenv"
)

//nolint:gochecknoglobals // read-only defaults
var configDefaults = map[string]any{
	"tz":                         "UTC",
	"server.address.http":        ":8000",
	"server.read_header_timeout": "10s",
	"server.shutdown_timeout":    "10s",
	"upload.max_bytes":           32 << 20,
	"modules.employee.enabled":   true,
}

func loadConfig() (pkgconfig.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, configDefaults)
	if err != nil {
		return nil, err
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	return cfg, nil
}

func (a *App) initSettings() error {
	settings := settingsFromConfig(a.config)
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid server settings: %w", err)
	}

	a.settings = settings
	return nil
}

func (a *App) initLibraries() error {
	a.goroutine = pkgroutine.NewManager(pkgroutine.DefaultMaxGoroutine)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}
	a.uploadID = sf

	return nil
}

func (a *App) initHTTPServer() error {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.httpServer = newHTTPServer(a.settings, corsPolicy().Handler(a.router))

	slog.Info("http server configured", "address", a.settings.Address, "allowed_origins", allowedOrigins)
	return nil
}

func (a *App) initClosers() error {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}

	return nil
}
