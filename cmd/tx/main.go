// Command tx selects and filters columns of tabular text.
//
// Usage:
//
//	ps aux | tx 'PID COMMAND if USER = "root"'
//	tx -s , -h 'name email' < users.csv
//	tx --parquet data.parquet 'id name if active = "true"'
package main

import (
	"os"

	"github.com/vegasq/tx/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
}
