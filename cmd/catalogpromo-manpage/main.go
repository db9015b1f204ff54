package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/catalogpromo/cmd/catalogpromo"
	"github.com/arthur-debert/catalogpromo/internal/version"
)

func main() {
	rootCmd := catalogpromo.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CATALOGPROMO",
		Section: "1",
		Source:  "catalogpromo " + version.Version,
		Manual:  "catalogpromo manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
