package reader

import (
	"fmt"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// ColumnInfo describes one input column as shown by --schema.
// Position is 1-based, as used in queries.
type ColumnInfo struct {
	Position int
	Name     string
	Type     string
}

// Row renders the column description as an output row
func (c ColumnInfo) Row() []string {
	return []string{strconv.Itoa(c.Position), c.Name, c.Type}
}

// DescribeHeader describes text columns from a header row. Text input is
// untyped, so every column is "text".
func DescribeHeader(header []string) []ColumnInfo {
	infos := make([]ColumnInfo, len(header))
	for i, name := range header {
		infos[i] = ColumnInfo{Position: i + 1, Name: name, Type: "text"}
	}
	return infos
}

// DescribeParquet describes the top-level columns of a parquet file.
func DescribeParquet(path string) ([]ColumnInfo, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = r.Close() }()

	return describeFields(r.Schema().Fields()), nil
}

func describeFields(fields []parquet.Field) []ColumnInfo {
	infos := make([]ColumnInfo, len(fields))
	for i, field := range fields {
		typ := friendlyType(field)
		if field.Optional() {
			typ += " (optional)"
		} else if field.Repeated() {
			typ = "LIST<" + typ + ">"
		}
		infos[i] = ColumnInfo{Position: i + 1, Name: field.Name(), Type: typ}
	}
	return infos
}

// friendlyType maps parquet physical and logical types to short names.
func friendlyType(field parquet.Field) string {
	if field.Type() == nil || len(field.Fields()) > 0 {
		return "GROUP"
	}

	if logicalType := field.Type().LogicalType(); logicalType != nil {
		switch name := logicalType.String(); name {
		case "STRING", "UTF8":
			return "STRING"
		case "ENUM", "UUID", "DATE", "TIME", "TIMESTAMP", "DECIMAL", "JSON", "BSON":
			return name
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
