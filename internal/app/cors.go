package app

import (
	"net/http"

	"github.com/rs/cors"
)

// Browser frontends served by the React and Vite dev servers.
//
//nolint:gochecknoglobals // fixed policy
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func corsPolicy() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodConnect,
			http.MethodOptions,
			http.MethodTrace,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}
