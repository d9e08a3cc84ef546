// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lgpd-scan/internal/config"
	"lgpd-scan/internal/core"
	"lgpd-scan/internal/formatters"
	_ "lgpd-scan/internal/formatters/text"
	"lgpd-scan/internal/version"

	"golang.org/x/term"
)

// app carries the process environment so run can be driven from tests.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal bool
	configFile string // "" searches the standard locations
	format     string // "" uses the configured format
}

// loadConfiguration loads the configuration file or returns default config
func (a *app) loadConfiguration() *config.Config {
	cfg, err := config.LoadConfigWithFallback(a.configFile)
	if err != nil {
		fmt.Fprintf(a.stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(a.stderr, "Using default configuration\n")
	}
	return cfg
}

// run analyses the file named by args[0], or the configured default file.
// Failures are reported and never change the exit status.
func (a *app) run(args []string) int {
	cfg := a.loadConfiguration()

	filePath := cfg.Defaults.DefaultFile
	if len(args) > 0 && args[0] != "" {
		filePath = args[0]
	}

	if cfg.Defaults.Debug {
		fmt.Fprintln(a.stderr, version.Info())
	}

	fmt.Fprintf(a.stdout, "--- Iniciando Análise do Arquivo: %s ---\n", filePath)

	scan, err := core.ScanFile(core.ScanConfig{
		FilePath:  filePath,
		Debug:     cfg.Defaults.Debug,
		LogWriter: a.stderr,
	})
	if err != nil {
		fmt.Fprintln(a.stdout, loadErrorMessage(filePath, err))
		return 0
	}
	defer scan.Clear()

	format := cfg.Defaults.Format
	if a.format != "" {
		format = a.format
	}

	report, err := formatters.Export(format, scan, formatters.FormatterOptions{
		NoColor: cfg.Defaults.NoColor || !a.isTerminal,
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 0
	}

	fmt.Fprint(a.stdout, report)
	return 0
}

func loadErrorMessage(filePath string, err error) string {
	if errors.Is(err, core.ErrFileNotFound) {
		return fmt.Sprintf("ERRO: Arquivo não encontrado em %s", filePath)
	}
	reason := err
	var loadErr *core.LoadError
	if errors.As(err, &loadErr) {
		reason = loadErr.Kind
		if loadErr.Err != nil {
			reason = loadErr.Err
		}
	}
	return fmt.Sprintf("ERRO: Não foi possível ler o arquivo %s: %v", filePath, reason)
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: isTerminal(os.Stdout),
	}
	os.Exit(a.run(os.Args[1:]))
}
