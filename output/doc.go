// Package output writes projected rows.
//
// A Printer receives an optional header and then every row in input order.
// Four layouts are available:
//
//   - FormatTable (default): left aligned columns padded to the widest cell,
//     rendered with github.com/olekukonko/tablewriter. Rows are buffered.
//   - FormatSimple: fields joined by one space, written as they arrive.
//   - FormatCSV: RFC 4180 records.
//   - FormatJSON: JSON Lines, one array of strings per row.
//
// # Basic Usage
//
//	p, err := output.New(output.FormatSimple, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range rows {
//	    if err := p.WriteRow(row); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := p.Flush(); err != nil {
//	    log.Fatal(err)
//	}
package output
