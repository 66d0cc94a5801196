package usecase

import "github.com/ShawnC4/valuelabs/internal/employee/entity"

// ParseResult holds the data rows of one upload in file order.
type ParseResult struct {
	UploadID int64
	Filename string
	Rows     []entity.Row
}
