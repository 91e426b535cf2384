package main

import "github.com/kwizera-io/go-momo-etl/cmd/etl/cmd"

func main() {
	cmd.Execute()
}
