package cli

import (
	"context"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat about tonight's dinner",
		Long: `Start an interactive chat. Ask for dinner ideas ("something quick",
"high protein"), say "suggest another", log with "I'll cook Dal Tadka", or ask
"how am I doing?" and "what's in the pantry?". Edits to the recipe file are
picked up while the chat is open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			p := tea.NewProgram(newChatModel(ctx, app),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if app.CatalogPath != "" {
				go watchCatalog(ctx, app, p)
			}
			_, err := p.Run()
			return err
		},
	}
}

// watchCatalog drops the cached catalog whenever the recipe file changes and
// tells the chat so it can say so.
func watchCatalog(ctx context.Context, app *App, p *tea.Program) {
	log := logging.OrNop(app.Logger)
	err := catalog.Watch(ctx, app.CatalogPath, catalog.DefaultDebounce, log, func() {
		app.Catalog.Reload()
		p.Send(catalogReloadedMsg{})
	})
	if err != nil {
		log.Warn("catalog watcher stopped", zap.Error(err))
	}
}
