package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ShawnC4/valuelabs/internal/employee/entity"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkgerror"
	"github.com/ShawnC4/valuelabs/internal/pkg/pkguid"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	csvSuffix = ".csv"

	msgOnlyCSV        = "Only CSV files are supported"
	msgProcessFailure = "Failed to process file: "
)

var errNotCSV = errors.New("filename must end with " + csvSuffix)

// csvFilename accepts names ending in ".csv", case-sensitive.
var csvFilename = validation.By(func(value interface{}) error {
	name, _ := value.(string)
	if !strings.HasSuffix(name, csvSuffix) {
		return errNotCSV
	}
	return nil
})

type Dependency struct {
	ID pkguid.NumberID
}

type Usecase struct {
	id pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	return &Usecase{id: dep.ID}
}

// ParseFile checks the filename, then reads, decodes, and parses r.
//
// r is not read when the filename is rejected. Any failure after the
// filename check is reported as a single server error whose message carries
// the cause.
func (u *Usecase) ParseFile(ctx context.Context, filename string, r io.Reader) (ParseResult, error) {
	if err := validation.Validate(filename, csvFilename); err != nil {
		slog.InfoContext(ctx, "rejected upload", "filename", filename, "reason", err.Error())
		return ParseResult{}, pkgerror.NewUnsupportedFile(msgOnlyCSV)
	}

	uploadID := u.nextID()

	content, err := io.ReadAll(r)
	if err != nil {
		return ParseResult{}, u.processFailure(ctx, uploadID, filename, fmt.Errorf("read file: %w", err))
	}
	file := entity.UploadedFile{Filename: filename, Content: content}

	text, err := decodeUTF8(file.Content)
	if err != nil {
		return ParseResult{}, u.processFailure(ctx, uploadID, filename, err)
	}

	rows, err := parseCSV(text)
	if err != nil {
		return ParseResult{}, u.processFailure(ctx, uploadID, filename, err)
	}

	slog.InfoContext(ctx, "upload parsed",
		"upload_id", uploadID,
		"filename", file.Filename,
		"bytes", file.Size(),
		"rows", len(rows),
	)

	return ParseResult{
		UploadID: uploadID,
		Filename: file.Filename,
		Rows:     rows,
	}, nil
}

func (u *Usecase) nextID() int64 {
	if u.id == nil {
		return 0
	}
	return u.id.Generate()
}

func (u *Usecase) processFailure(ctx context.Context, uploadID int64, filename string, err error) error {
	slog.WarnContext(ctx, "failed to process upload", "upload_id", uploadID, "filename", filename, "error", err)
	return pkgerror.NewServerWithMessage(msgProcessFailure+err.Error(), err)
}
