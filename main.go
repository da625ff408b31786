package main

import (
	"fmt"
	"os"

	"github.com/astiages123/auditpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
