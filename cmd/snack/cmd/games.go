package cmd

import (
	"fmt"

	"github.com/f3rmion/snack/internal/tui"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the configured games",
	RunE:  runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width := 0
	for _, g := range cfg.Games {
		width = max(width, runewidth.StringWidth(g.Name))
	}

	for i := range cfg.Games {
		gc := &cfg.Games[i]
		status := tui.HelpStyle.Render("dataset not loaded")
		if catalog, err := loadCatalog(gc, cfg.Settings); err == nil {
			status = fmt.Sprintf("%d items, %d in the secret pool", catalog.Size(), catalog.PoolSize())
		}
		fmt.Printf("%s  %s\n", tui.NameStyle.Render(runewidth.FillRight(gc.Name, width)), gc.Title)
		fmt.Printf("%s  %s\n", runewidth.FillRight("", width), status)
		if gc.Description != "" {
			fmt.Printf("%s  %s\n", runewidth.FillRight("", width), tui.HelpStyle.Render(gc.Description))
		}
	}
	return nil
}
