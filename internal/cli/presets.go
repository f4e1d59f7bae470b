package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/pipeline"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List or pick generation presets",
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsPickCommand())

	return cmd
}

// presetsListCommand creates the "presets list" subcommand.
func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}
			fmt.Println(presetTable(store.All()))
			printNextStep("Render one", appName+" render --preset NAME")
			return nil
		},
	}
}

// presetTable renders presets as a table.
func presetTable(presets []config.Preset) string {
	rows := make([][]string, len(presets))
	for i, p := range presets {
		rows[i] = presetRow(p)
	}
	return renderTable([]string{"Name", "Hash", "Size", "Grid", "Layers", "Motif"}, rows)
}

func presetRow(p config.Preset) []string {
	cfg := p.Config.WithDefaults()
	motif := cfg.Motif
	if motif == "" {
		motif = "—"
	}
	return []string{
		p.Name,
		shortHash(p.Hash),
		fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		fmt.Sprint(cfg.GridSize),
		fmt.Sprint(cfg.Layers),
		motif,
	}
}

// presetsPickCommand creates the "presets pick" subcommand.
func (c *CLI) presetsPickCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a preset interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}
			if store.Len() == 0 {
				printWarning("No presets available")
				return nil
			}

			p := tea.NewProgram(NewPresetListModel(store.All()), tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(PresetListModel)
			if !ok || fm.Selected == nil {
				printDetail("No selection made")
				return nil
			}

			sel := fm.Selected
			job := pipeline.Job{Hash: sel.Hash, Label: sel.Name, Config: sel.Config, Refresh: opts.refresh}
			return c.runRender(cmd.Context(), job, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", defaultOutDir, "output directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}
