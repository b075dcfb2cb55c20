// readcalc estimates reading time from the command line.
//
// Usage:
//
//	readcalc estimate --pages 10 --language b2 --difficulty b2 --focus normal
//	readcalc levels --format yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/cleberrangel/reader-calc/internal/estimator"
	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/model"
	"github.com/cleberrangel/reader-calc/internal/service"
)

var version = "dev"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "readcalc",
		Usage:     "Estimate how long a text takes to read",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"READCALC_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.InitWithWriter(c.String("log-level"), false, stderr)
			return nil
		},
		Commands: []*cli.Command{
			estimateCommand(),
			levelsCommand(),
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   FormatText,
		Usage:   "Output format (text, json, yaml)",
	}
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate reading time",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pages",
				Aliases: []string{"p"},
				Value:   estimator.DefaultPages,
				Usage:   "Number of pages",
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Value:   estimator.DefaultLanguage.Code(),
				Usage:   "Language proximity (native, c1, b2, b1, a2, a1, none)",
			},
			&cli.StringFlag{
				Name:    "difficulty",
				Aliases: []string{"d"},
				Value:   estimator.DefaultDifficulty.Code(),
				Usage:   "Text difficulty (a1, a2, b1, b2, academic, philosophical)",
			},
			&cli.StringFlag{
				Name:  "focus",
				Value: estimator.DefaultFocus.Code(),
				Usage: "Reader focus (deep, normal, distracted, exhausted)",
			},
			&cli.IntFlag{
				Name:  "max-pages",
				Value: 100000,
				Usage: "Largest accepted page count",
			},
			formatFlag(),
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	pages := c.Int("pages")
	calculator := service.NewCalculatorService(c.Int("max-pages"), metrics.New())

	result, err := calculator.Estimate(context.Background(), model.EstimateRequest{
		Pages:      &pages,
		Language:   c.String("language"),
		Difficulty: c.String("difficulty"),
		Focus:      c.String("focus"),
	}, metrics.SourceCLI)
	if err != nil {
		return err
	}

	logger.Global().Debug().
		Str("time_per_page", result.TimePerPage).
		Int("minutes", result.Minutes).
		Msg("estimate computed")

	return renderEstimate(c.App.Writer, result, c.String("format"))
}

func renderEstimate(w io.Writer, result *model.EstimateResult, format string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "ESTIMATED_TIME: %s\n", result.Formatted)
		return err
	case FormatJSON, FormatYAML:
		return encode(w, result, format)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// =============================================================================
// LEVELS COMMAND
// =============================================================================

func levelsCommand() *cli.Command {
	return &cli.Command{
		Name:   "levels",
		Usage:  "List language, difficulty and focus levels with their multipliers",
		Flags:  []cli.Flag{formatFlag()},
		Action: runLevels,
	}
}

func runLevels(c *cli.Context) error {
	return renderLevels(c.App.Writer, service.Catalog(), c.String("format"))
}

func renderLevels(w io.Writer, catalog model.LevelCatalog, format string) error {
	switch format {
	case FormatText:
		sections := []struct {
			title   string
			options []model.LevelOption
		}{
			{"LANG_PROXIMITY", catalog.Language},
			{"COMPLEXITY_INDEX", catalog.Difficulty},
			{"NEURAL_FOCUS", catalog.Focus},
		}
		for _, s := range sections {
			if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
				return err
			}
			for _, o := range s.options {
				if _, err := fmt.Fprintf(w, "  %-14s %-20s x%s\n", o.Code, o.Label, o.Multiplier); err != nil {
					return err
				}
			}
		}
		return nil
	case FormatJSON, FormatYAML:
		return encode(w, catalog, format)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func encode(w io.Writer, v interface{}, format string) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Unix timestamps keep CLI log lines short
func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
