package employee

import (
	"errors"

	"github.com/ShawnC4/valuelabs/internal/employee/inbound"
	"github.com/ShawnC4/valuelabs/internal/employee/usecase"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgconfig"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgrouter"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

// New wires the CSV ingestion endpoints into dep.Router.
func New(dep Dependency) error {
	if dep.Router == nil || dep.Config == nil {
		return errors.New("employee: router and config are required")
	}

	uc := usecase.New(usecase.Dependency{
		ID: dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetInt("upload.max_bytes"))

	return nil
}
