package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tre/cmd/tre"
	"github.com/arthur-debert/tre/internal/version"
)

func main() {
	rootCmd := tre.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TRE",
		Section: "1",
		Source:  "tre " + version.Version,
		Manual:  "tre manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
