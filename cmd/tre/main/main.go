package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tre/cmd/tre"
	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	rootCmd := tre.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
