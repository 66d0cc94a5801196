package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ShawnC4/valuelabs/internal/employee/entity"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// decodeUTF8 returns content unchanged if it is valid UTF-8.
func decodeUTF8(content []byte) ([]byte, error) {
	text, _, err := transform.Bytes(encoding.UTF8Validator, content)
	if err != nil {
		return nil, fmt.Errorf("decode utf-8: %w", err)
	}
	return text, nil
}

// parseCSV reads the first record as the header and turns every following
// record into a row. Blank lines are skipped. Quotes are lenient: a stray
// quote inside a field is kept as text and an unclosed quote runs to the end
// of the input. A file with no data records yields an empty, non-nil slice.
func parseCSV(text []byte) ([]entity.Row, error) {
	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows := make([]entity.Row, 0)

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return rows, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		rows = append(rows, entity.NewRow(headers, record))
	}

	return rows, nil
}
