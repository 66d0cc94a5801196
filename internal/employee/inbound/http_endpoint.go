package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ShawnC4/valuelabs/internal/employee/entity"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Welcome(context.Context, *http.Request) (any, error) {
	return WelcomeResponse{Message: welcomeMessage}, nil
}

func (h *HTTPEndpoint) File(ctx context.Context, r *http.Request) (any, error) {
	part, filename, cleanup, err := extractFilePart(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.ParseFile(ctx, filename, part)
	if err != nil {
		return nil, err
	}

	rows := result.Rows
	if rows == nil {
		rows = []entity.Row{}
	}

	return FileResponse{Rows: rows}, nil
}

// extractFilePart returns the first multipart part that carries a filename,
// together with that filename as the client sent it. The form field name is
// not checked.
func extractFilePart(r *http.Request) (*multipart.Part, string, func(), error) {
	noop := func() {}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return nil, "", noop, pkgerror.NewInvalidFormat()
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, "", noop, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, "", noop, pkgerror.NewInvalidInput(pkgerror.ErrNoFile)
			}
			return nil, "", noop, pkgerror.NewInvalidFormat()
		}

		if filename := rawFileName(part); filename != "" {
			return part, filename, func() { _ = part.Close() }, nil
		}
		_ = part.Close()
	}
}

// rawFileName reads the filename parameter of the part's Content-Disposition
// without the path cleanup done by multipart.Part.FileName.
func rawFileName(part *multipart.Part) string {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return ""
	}
	return params["filename"]
}
