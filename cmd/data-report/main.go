package main

import (
	"fmt"
	"os"

	"github.com/gabriellafis/data-report-cli/internal/adapter/driven/config"
	"github.com/gabriellafis/data-report-cli/internal/adapter/driven/export"
	"github.com/gabriellafis/data-report-cli/internal/adapter/driven/source"
	"github.com/gabriellafis/data-report-cli/internal/adapter/driving/cli"
	"github.com/gabriellafis/data-report-cli/internal/application/usecase"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"github.com/gabriellafis/data-report-cli/pkg/console"
	"github.com/gabriellafis/data-report-cli/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)

	// O caso de uso depende da configuração efetiva (autor, fontes AWS)
	app.SetUseCaseFactory(func(cfg types.Config) *usecase.ToolUseCase {
		sources := usecase.Sources{
			Analyze:  source.NewAnalyzeSample(),
			Report:   source.NewReportSample(),
			Resolver: source.NewResolver(cfg.AWSProfile, cfg.AWSRegion),
		}
		return usecase.NewToolUseCase(sources, exportRepo, consoleImpl, cfg)
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
