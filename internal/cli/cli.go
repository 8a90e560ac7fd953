package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"langconv/internal/config"
	"langconv/internal/converter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "langconv",
		Short: "Batch converter between .lang and JSON localization files",
		Long: `Converts localization files between the line-oriented .lang format
(key=value pairs with # comments) and flat pretty-printed JSON objects.
Invoked without a subcommand it opens an interactive menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}

	rootCmd.AddCommand(convertCmd("lang2json", "Convert all .lang files in the input directory to JSON", converter.LangToJSON))
	rootCmd.AddCommand(convertCmd("json2lang", "Convert all .json files in the input directory to .lang", converter.JSONToLang))
	rootCmd.AddCommand(convertCmd("all", "Convert .lang files to JSON and .json files to .lang in one pass", converter.Both))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertCmd(use, short string, mode converter.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [input-dir] [output-dir]",
		Short: short,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if len(args) > 0 {
				cfg.InputDir = args[0]
			}
			if len(args) > 1 {
				cfg.OutputDir = args[1]
			}
			if err := ensureDirs(cfg); err != nil {
				return err
			}
			return runBatch(cfg, mode)
		},
	}
}

// runMenu is the interactive loop: prompt, run one batch, prompt again.
func runMenu() error {
	cfg := config.Load()
	if err := ensureDirs(cfg); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\n1: lang => json\n2: json => lang\n3: convert both\n0: exit")
		fmt.Print("Select an option: ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "0":
			fmt.Println("Exiting.")
			return nil
		case "1":
			if err := runBatch(cfg, converter.LangToJSON); err != nil {
				return err
			}
		case "2":
			if err := runBatch(cfg, converter.JSONToLang); err != nil {
				return err
			}
		case "3":
			if err := runBatch(cfg, converter.Both); err != nil {
				return err
			}
		default:
			fmt.Println("Invalid selection. Choose 0 (exit), 1 (lang=>json), 2 (json=>lang) or 3 (convert both).")
		}
	}
}

// runBatch performs one conversion pass and prints its summary.
func runBatch(cfg *config.Config, mode converter.Mode) error {
	conv := converter.New(cfg.InputDir, cfg.OutputDir)
	conv.Notify = func(inPath, outPath string) {
		fmt.Printf("%s => %s\n", inPath, outPath)
	}

	report, err := conv.Run(mode)
	if err != nil {
		return err
	}

	printSummary(report)
	return nil
}

func printSummary(report *converter.Report) {
	fmt.Println("\nRun complete:")
	if report.OK() {
		fmt.Println("All files were processed successfully.")
		return
	}

	if len(report.ReadFailures) > 0 {
		fmt.Println("\nFiles that could not be read:")
		for _, f := range report.ReadFailures {
			fmt.Printf("- %s: %s\n", f.Stem, f.Message)
		}
	}
	if len(report.WriteFailures) > 0 {
		fmt.Println("\nFiles that could not be written:")
		for _, f := range report.WriteFailures {
			fmt.Printf("- %s: %s\n", f.Stem, f.Message)
		}
	}
}

// ensureDirs creates the input and output directories if they are missing.
func ensureDirs(cfg *config.Config) error {
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
