package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabriellafis/data-report-cli/internal/application/usecase"
	"github.com/gabriellafis/data-report-cli/internal/domain/repository"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"github.com/gabriellafis/data-report-cli/pkg/logger"
	"github.com/gabriellafis/data-report-cli/pkg/version"
)

// UseCaseFactory builds the tool use case once the effective configuration is known.
type UseCaseFactory func(cfg types.Config) *usecase.ToolUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	toolUseCase *usecase.ToolUseCase
	newUseCase  UseCaseFactory
	configRepo  repository.ConfigRepository
	version     string
	out         io.Writer
	errOut      io.Writer
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:               "data-report",
		Short:             "Professional data analysis and reporting CLI",
		Long:              `data-report aggregates records by category, generates JSON reports and shows tool information.`,
		Version:           version.FormatVersion(),
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "Data Report CLI version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(app.newAnalyzeCmd(), app.newReportCmd(), app.newInfoCmd())

	app.rootCmd = rootCmd
	app.SetOutput(os.Stdout, os.Stderr)
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetUseCaseFactory sets how the tool use case is built for the CLI app.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.newUseCase = factory
}

// SetConfigRepository sets the repository used to read --config-file.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetOutput redirects regular output and diagnostics.
func (app *CLIApp) SetOutput(out, errOut io.Writer) {
	app.out = out
	app.errOut = errOut
	if app.rootCmd != nil {
		app.rootCmd.SetOut(out)
		app.rootCmd.SetErr(errOut)
	}
}

// parseArgs parses the persistent flags into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) *types.CLIArgs {
	configFile, _ := cmd.Flags().GetString("config-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &types.CLIArgs{
		ConfigFile: configFile,
		Verbose:    verbose,
	}
}

// setup carrega a configuração, prepara o logger e constrói o caso de uso.
func (app *CLIApp) setup(cmd *cobra.Command, args []string) error {
	// Flags are valid past this point; runtime failures should not print usage.
	cmd.SilenceUsage = true

	cliArgs := app.parseArgs(cmd)

	cfg := types.DefaultConfig(app.version)
	if cliArgs.ConfigFile != "" {
		if app.configRepo == nil {
			return fmt.Errorf("no configuration repository available to load %s", cliArgs.ConfigFile)
		}
		fileCfg, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.Merge(fileCfg)
	}

	log := logger.New(app.errOut, cliArgs.Verbose)
	cmd.SetContext(log.WithContext(cmd.Context()))
	log.Debug().Str("command", cmd.Name()).Str("config_file", cliArgs.ConfigFile).Msg("configuration loaded")

	if app.newUseCase == nil {
		return fmt.Errorf("use case factory not configured")
	}
	app.toolUseCase = app.newUseCase(cfg)

	if cmd != app.rootCmd {
		displayWelcomeBanner(app.out, cfg)
	}
	return nil
}

func (app *CLIApp) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze data from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			source, _ := cmd.Flags().GetString("source")

			_, err := app.toolUseCase.Analyze(cmd.Context(), types.AnalyzeArgs{
				File:   file,
				Source: source,
			})
			return err
		},
	}

	cmd.Flags().StringP("file", "f", "", "Input file path (local path or s3://bucket/key)")
	cmd.Flags().String("source", "", "Record source: sample, file or s3 (default from config, sample)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (app *CLIApp) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reportArgs := types.ReportArgs{}
			if cmd.Flags().Changed("type") {
				reportArgs.Type, _ = cmd.Flags().GetString("type")
			}
			reportArgs.Source, _ = cmd.Flags().GetString("source")
			reportArgs.File, _ = cmd.Flags().GetString("file")
			reportArgs.Export, _ = cmd.Flags().GetStringSlice("export")
			reportArgs.Dir, _ = cmd.Flags().GetString("dir")
			reportArgs.ReportName, _ = cmd.Flags().GetString("name")

			_, err := app.toolUseCase.Report(cmd.Context(), reportArgs)
			return err
		},
	}

	cmd.Flags().StringP("type", "t", usecase.DefaultReportType, "Report type")
	cmd.Flags().String("source", "", "Record source: sample, file or s3 (default from config, sample)")
	cmd.Flags().StringP("file", "f", "", "Record file for the file and s3 sources")
	cmd.Flags().StringSliceP("export", "e", nil, "Also export the report: json, csv, pdf (comma-separated)")
	cmd.Flags().StringP("dir", "d", "", "Directory to save exported reports (default: current directory)")
	cmd.Flags().StringP("name", "n", "", "Base name for exported report files (without extension)")

	return cmd
}

func (app *CLIApp) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show system information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.toolUseCase.Info(cmd.Context())

			if check, _ := cmd.Flags().GetBool("check-update"); check {
				version.CheckLatestVersion(cmd.Context(), app.toolUseCase.Config().Version)
			}
			return nil
		},
	}

	cmd.Flags().Bool("check-update", false, "Check GitHub for a newer release")

	return cmd
}
