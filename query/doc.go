// Package query compiles and runs tx column queries.
//
// A query lists the columns to print, by 1-based number or by header name,
// optionally followed by a filter:
//
//	NAME AGE
//	2 1
//	NAME if CITY = "Paris" and AGE = "18"
//	1 3 if (A = "0" | A = "1") & (B = "1" | C = "2")
//
// Filters compare two operands for exact string equality. An operand is a
// column or a double-quoted string. "and" (or "&") binds tighter than "or"
// (or "|"), both associate to the left, and parentheses group.
//
// # Compiling
//
// Compile parses the query and resolves column names against the first
// input row. Names are only looked up when the query uses them, and
// Result.HeaderRequired tells the caller that the first row was consumed as
// a header:
//
//	res, err := query.Compile(`NAME if AGE = "18"`, firstRow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Running
//
// Process applies the filter to one row and projects the selected columns:
//
//	out, ok, err := res.Query.Process(row)
//	if err != nil {
//	    // the row is narrower than a referenced column
//	}
//	if ok {
//	    fmt.Println(strings.Join(out, " "))
//	}
//
// # Errors
//
// Compile reports grammar errors as *SyntaxError, which points at the
// offending character. Header problems are *DuplicateHeaderError and
// *ColumnNotFoundError, and column numbers below 1 are *InvalidOrdinalError.
// Process reports *ColumnOutOfRangeError per row and leaves the decision to
// skip or abort to the caller.
package query
