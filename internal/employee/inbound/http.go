package inbound

import (
	"context"
	"io"

	"github.com/ShawnC4/valuelabs/internal/employee/usecase"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgrouter"
)

//go:generate mockgen -source=http.go -destination=mock_uc_test.go -package=inbound

type uc interface {
	ParseFile(ctx context.Context, filename string, r io.Reader) (usecase.ParseResult, error)
}

// RegisterHTTPEndpoint mounts the welcome and upload endpoints.
// maxUploadBytes caps the /file request body; zero or less disables the cap.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, maxUploadBytes int64) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/", end.Welcome)
	r.POST("/file", end.File, pkgrouter.MaxBodyBytes(maxUploadBytes))
}
