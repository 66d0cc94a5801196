package app

import (
	"fmt"
	"log/slog"

	"github.com/ShawnC4/valuelabs/internal/employee"
)

func (a *App) initModules() error {
	if !a.config.GetBool("modules.employee.enabled") {
		slog.Warn("module employee is disabled")
		return nil
	}

	if err := employee.New(employee.Dependency{
		Config: a.config,
		Router: a.router,
		ID:     a.uploadID,
	}); err != nil {
		return fmt.Errorf("init module employee: %w", err)
	}

	return nil
}
