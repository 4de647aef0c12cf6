package envaudit

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indiekitai/env-audit/internal/audit"
	"github.com/indiekitai/env-audit/internal/audit/types"
	"github.com/indiekitai/env-audit/internal/export"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

const version = "0.3.0"

var (
	cfgFile     string
	formatName  string
	outputPath  string
	skipScripts bool
	workers     int
)

var rootCmd = &cobra.Command{
	Use:     "env-audit [source-path]",
	Short:   "Scan a codebase and generate documented environment variable templates",
	Version: version,
	Long: `env-audit scans source files for environment variable references and
produces a clean, documented template with categories and descriptions:
1. Classify - Map each file to its language pattern set
2. Extract - Collect raw references with defaults and provenance
3. Aggregate - Merge references into one record per variable
4. Render - Emit .env, TypeScript, Zod or JSON artifacts`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourcePath := "."
		if len(args) > 0 {
			sourcePath = args[0]
		}

		if err := runScan(cmd.Context(), sourcePath); err != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.env-audit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&skipScripts, "no-scripts", false, "skip scripts/, test/, tests/ directories")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "parallel extraction workers (default: number of CPUs)")
	rootCmd.Flags().StringVar(&formatName, "format", "env", "output format: env, typescript, zod or json")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".env-audit")
	}

	viper.SetEnvPrefix("ENV_AUDIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// scanTree runs the full pipeline against sourcePath with repo-local config
// applied, and prints accumulated warnings to stderr.
func scanTree(ctx context.Context, sourcePath string, quiet bool) (*types.Registry, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return nil, fmt.Errorf("path %q does not exist", sourcePath)
	}

	fs := filesystems.NewLocalFS()

	cfg, err := audit.LoadConfig(fs, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", audit.ConfigFile, err)
	}

	opts := cfg.Apply(audit.Options{
		SkipScripts: skipScripts,
		Workers:     workers,
	})

	if !quiet {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", sourcePath)
	}

	scanner := audit.NewScanner(fs, opts)
	reg, warnings, err := scanner.Scan(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: skipped %s: %s\n", w.File, w.Reason)
	}

	return reg, nil
}

func runScan(ctx context.Context, sourcePath string) error {
	quiet := formatName == "json"

	reg, err := scanTree(ctx, sourcePath, quiet)
	if err != nil {
		return err
	}

	fs := filesystems.NewLocalFS()
	existing, err := audit.DocumentedVars(fs, sourcePath)
	if err != nil {
		// Documented markers are cosmetic in scan mode; a broken env file
		// must not block template generation.
		existing = nil
	}

	var renderer export.Renderer
	if formatName == "env" {
		renderer = export.NewEnvRenderer(existing)
	} else {
		var ok bool
		renderer, ok = export.ForFormat(formatName)
		if !ok {
			return fmt.Errorf("unknown format %q (want env, typescript, zod or json)", formatName)
		}
	}

	output, err := renderer.Render(reg)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", renderer.Name(), err)
	}

	if !quiet {
		stats := reg.Stats()
		fmt.Fprintf(os.Stderr, "Found %d environment variables\n", stats.Total)
		fmt.Fprintf(os.Stderr, "Already defined: %d\n", len(existing))
		fmt.Fprintf(os.Stderr, "Required: %d, Optional: %d, Sensitive: %d\n",
			stats.Required, stats.Total-stats.Required, stats.Sensitive)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, output, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Written to %s\n", outputPath)
		return nil
	}

	_, err = os.Stdout.Write(output)
	return err
}
