package cli

import (
	"fmt"
	"io"

	"github.com/gabriellafis/data-report-cli/internal/application/usecase"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"github.com/gabriellafis/data-report-cli/pkg/console"
)

// displayWelcomeBanner exibe o banner de boas-vindas com nome, versão e autor.
func displayWelcomeBanner(w io.Writer, cfg types.Config) {
	fmt.Fprintln(w, console.BoldRed(usecase.ToolName))
	fmt.Fprintln(w, console.BrightBlue(fmt.Sprintf("Version %s", cfg.Version)))
	fmt.Fprintln(w, console.BrightCyan(fmt.Sprintf("Created by %s", cfg.Author)))
	fmt.Fprintln(w)
}
