package entity

import (
	"bytes"
	"encoding/json"
)

// RestKey is the key under which cells beyond the header width are collected.
const RestKey = "null"

// Row is one CSV data record keyed by header name.
//
// Keys keep header order (first occurrence wins the position, last
// occurrence wins the value). Headers without a cell hold no value and
// encode as JSON null. Cells without a header are collected under RestKey.
type Row struct {
	keys   []string
	values map[string]*string
	extra  []string
}

// NewRow pairs a record with the header names.
func NewRow(headers, record []string) Row {
	row := Row{
		keys:   make([]string, 0, len(headers)),
		values: make(map[string]*string, len(headers)),
	}

	for i, key := range headers {
		if _, seen := row.values[key]; !seen {
			row.keys = append(row.keys, key)
		}

		if i < len(record) {
			cell := record[i]
			row.values[key] = &cell
		} else {
			row.values[key] = nil
		}
	}

	if len(record) > len(headers) {
		row.extra = append([]string(nil), record[len(headers):]...)
		if _, seen := row.values[RestKey]; !seen {
			row.keys = append(row.keys, RestKey)
		}
	}

	return row
}

// Get returns the cell for key. ok is false when the key is unknown or the
// record was too short to fill it.
func (r Row) Get(key string) (string, bool) {
	v := r.values[key]
	if v == nil {
		return "", false
	}
	return *v, true
}

// MarshalJSON encodes the row as an object whose keys follow header order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var v []byte
		if key == RestKey && r.extra != nil {
			v, err = json.Marshal(r.extra)
		} else if cell, ok := r.Get(key); ok {
			v, err = json.Marshal(cell)
		} else {
			v = []byte("null")
		}
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
