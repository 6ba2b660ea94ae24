package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rileylov/sortlist/internal/zones"
	"github.com/rileylov/sortlist/reorder"
)

func newCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "sortlist [items...]",
		SilenceUsage: true,
		Short:        "Reorder a list in the terminal by dragging it with the mouse",
		Example: `
sortlist Grapefruit Yuzu Citron
sortlist --items-file groceries.txt --cancel-policy revert
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Items = args
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("items", nil, "Items to show, in order.")
	flags.String("items-file", "", "File with one item per line.")
	flags.String("cancel-policy", "commit", "Where an interrupted drag lands: commit or revert.")
	flags.Int("item-height", 1, "Rows per item.")
	flags.String("log-file", "", "Write debug logs to this file.")
	flags.Bool("mouse", true, "Enable mouse input.")
	flags.Int("slider-min", 1, "Lowest position the copy range slider allows.")
	flags.Int("slider-max", 0, "Highest position the copy range slider allows (default: item count).")
	_ = v.BindPFlags(flags)
	_ = v.BindPFlag("slider.min", flags.Lookup("slider-min"))
	_ = v.BindPFlag("slider.max", flags.Lookup("slider-max"))

	return cmd
}

func run(cfg Config) error {
	log, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	items, err := cfg.items()
	if err != nil {
		return err
	}

	// Initialize a global zone manager, so we don't have to pass around the manager
	// throughout components.
	zone.NewGlobal()
	reorder.InitDocument()
	defer reorder.CloseDocument()

	m, err := newModel(cfg, items, log, zones.Manager{})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
