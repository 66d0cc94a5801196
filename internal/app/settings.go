package app

import (
	"net/http"
	"time"

	"github.com/ShawnC4/valuelabs/internal/pkg/pkgconfig"
	validation "github.com/go-ozzo/ozzo-validation"
)

type serverSettings struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxUploadBytes    int64
}

func settingsFromConfig(cfg pkgconfig.Config) serverSettings {
	return serverSettings{
		Address:           cfg.GetString("server.address.http"),
		ReadHeaderTimeout: cfg.GetDuration("server.read_header_timeout"),
		ShutdownTimeout:   cfg.GetDuration("server.shutdown_timeout"),
		MaxUploadBytes:    cfg.GetInt("upload.max_bytes"),
	}
}

func (s serverSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required),
		validation.Field(&s.ReadHeaderTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&s.ShutdownTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&s.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
	)
}

func newHTTPServer(s serverSettings, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              s.Address,
		Handler:           h,
		ReadHeaderTimeout: s.ReadHeaderTimeout,
	}
}
