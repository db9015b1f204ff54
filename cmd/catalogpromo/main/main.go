package main

import (
	"os"

	"github.com/arthur-debert/catalogpromo/cmd/catalogpromo"
)

func main() {
	os.Exit(catalogpromo.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
