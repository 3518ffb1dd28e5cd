// Package reader turns input into rows of text fields.
//
// Text input is read line by line and cut into fields by one of three
// strategies:
//
//   - ModeAdaptive (default) looks at every line first and infers the
//     character columns the table is aligned on, so cells may contain
//     single spaces.
//   - ModeWhitespace splits on any run of whitespace.
//   - ModeDelimiter splits on a literal separator such as "," or "\t".
//
// # Basic Usage
//
//	r, err := reader.NewTextReader(os.Stdin, reader.Options{Mode: reader.ModeAdaptive})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    row, err := r.Read()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(row)
//	}
//
// # Adaptive Splitting
//
// Boundaries and SplitRanges expose the adaptive algorithm directly:
//
//	lines := []string{
//	    "ID  NAME          AGE",
//	    "1   Ivan Ivanov   18",
//	}
//	ranges := reader.Boundaries(lines)
//	reader.SplitRanges(lines[1], ranges) // ["1" "Ivan Ivanov" "18"]
//
// # Parquet Files
//
// ParquetReader yields the column names of a parquet file as a header row,
// followed by every record rendered as text. DescribeParquet lists the
// columns with their parquet types.
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
