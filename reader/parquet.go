package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ParquetReader yields the rows of a parquet file as text rows.
//
// The first row returned is the header made of the top-level column names,
// so queries can reference parquet columns by name. Values are rendered
// with formatValue.
type ParquetReader struct {
	file    *os.File
	pqFile  *parquet.File
	rows    *parquet.Reader
	columns []string

	headerSent bool
}

// NewParquetReader opens the parquet file at path.
//
// Returns an error if the file doesn't exist or is not a valid parquet file.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	return &ParquetReader{
		file:    file,
		pqFile:  pqFile,
		rows:    parquet.NewReader(pqFile),
		columns: columns,
	}, nil
}

// Columns returns the top-level column names in schema order
func (r *ParquetReader) Columns() []string {
	return r.columns
}

// Schema returns the parquet file schema.
func (r *ParquetReader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Read implements RowReader. The header comes first, then one row per
// parquet record.
func (r *ParquetReader) Read() ([]string, error) {
	if !r.headerSent {
		r.headerSent = true
		header := make([]string, len(r.columns))
		copy(header, r.columns)
		return header, nil
	}

	if r.rows == nil {
		return nil, os.ErrClosed
	}

	record := make(map[string]interface{})
	if err := r.rows.Read(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	row := make([]string, len(r.columns))
	for i, col := range r.columns {
		row[i] = formatValue(record[col])
	}
	return row, nil
}

// Close releases the parquet reader and the file handle. It is safe to call
// Close multiple times.
func (r *ParquetReader) Close() error {
	if r.rows != nil {
		_ = r.rows.Close()
		r.rows = nil
	}
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// formatValue converts a parquet value to the text form used in rows
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
