package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/benplan/benplan/internal/calculation"
	"github.com/benplan/benplan/internal/config"
	"github.com/benplan/benplan/internal/domain"
	"github.com/benplan/benplan/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zerologAdapter implements calculation.Logger on a zerolog.Logger.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }

// newLogger builds the CLI logger. Debug mode lowers the level and keeps the
// console writer; otherwise only warnings and errors surface.
func newLogger(debugMode bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debugMode {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

var rootCmd = &cobra.Command{
	Use:   "benplan",
	Short: "Health benefits bundle recommender",
	Long:  "Models annual healthcare costs across candidate plans and recommends a plan-plus-account bundle",
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [input-file]",
	Short: "Generate lifestyle bundle recommendations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugMode, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")

		logger := newLogger(debugMode)

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewRecommendationEngineWithRates(input.EffectiveRates())
		engine.SetLogger(zerologAdapter{log: logger})

		resp, err := engine.Recommend(&input.Profile, input.Plans, input.Prescriptions)
		if err != nil {
			return fmt.Errorf("recommendation failed: %w", err)
		}

		formatter, err := output.NewFormatter(format)
		if err != nil {
			return err
		}
		rendered, err := formatter.Format(&resp)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}

		return writeOutput(outPath, rendered)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare typical and worst-case costs across all candidate plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugMode, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")

		logger := newLogger(debugMode)

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewRecommendationEngineWithRates(input.EffectiveRates())
		engine.SetLogger(zerologAdapter{log: logger})

		analyses := engine.AnalyzePlans(&input.Profile, input.Plans, input.Prescriptions)

		var rendered string
		switch format {
		case "table", "":
			formatter := &output.AnalysisTableFormatter{}
			rendered = formatter.Format(analyses)
		case "json":
			data, err := json.MarshalIndent(analyses, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting failed: %w", err)
			}
			rendered = string(data)
		default:
			return fmt.Errorf("unknown output format %q (expected table or json)", format)
		}

		return writeOutput(outPath, rendered)
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates [input-file]",
	Short: "Print the effective financial rates table",
	Long:  "Prints the rates table the engine would use: defaults merged with the input file's rates block, or plain defaults when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rates := domain.DefaultRates()
		if len(args) == 1 {
			parser := config.NewInputParser()
			input, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			rates = input.EffectiveRates()
		}

		data, err := json.MarshalIndent(rates, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "benplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// writeOutput writes rendered output to a file or stdout.
func writeOutput(path, rendered string) error {
	if path == "" {
		fmt.Fprintln(os.Stdout, rendered)
		return nil
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "Output written to %s\n", path)
	return nil
}

func main() {
	recommendCmd.Flags().String("format", "table", "Output format: table, json, or csv")
	recommendCmd.Flags().String("output", "", "Write output to a file instead of stdout")
	recommendCmd.Flags().Bool("debug", false, "Enable debug logging")

	compareCmd.Flags().String("format", "table", "Output format: table or json")
	compareCmd.Flags().String("output", "", "Write output to a file instead of stdout")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
