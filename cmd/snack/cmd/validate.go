package cmd

import (
	"fmt"

	"github.com/f3rmion/snack/internal/config"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate [game...]",
	Short: "Check that game datasets load cleanly",
	Long: `Load every configured game's dataset (or just the named ones) and
report item and secret pool counts. A record missing an attribute, with a
value of the wrong type, an unknown difficulty or a repeated name fails
the whole dataset.

Example:
  snack validate
  snack validate movie tennis`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type validation struct {
	game  string
	items int
	pool  int
	err   error
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	games := cfg.Games
	if len(args) > 0 {
		games = nil
		for _, name := range args {
			gc, err := cfg.Game(name)
			if err != nil {
				return err
			}
			games = append(games, *gc)
		}
	}

	results := make([]validation, len(games))
	var eg errgroup.Group
	for i := range games {
		gc := &games[i]
		eg.Go(func() error {
			results[i] = validateGame(gc, cfg.Settings)
			return results[i].err
		})
	}
	failed := eg.Wait()

	for _, r := range results {
		if r.err != nil {
			fmt.Printf("%s %s: %v\n", tui.ErrorStyle.Render("✗"), r.game, r.err)
			continue
		}
		fmt.Printf("%s %s: %d items, %d in the secret pool\n", tui.MatchStyle.Render("✓"), r.game, r.items, r.pool)
	}

	if failed != nil {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateGame(gc *config.GameConfig, s config.Settings) validation {
	catalog, err := loadCatalog(gc, s)
	if err != nil {
		logging.Warn("dataset invalid", "game", gc.Name, "err", err)
		return validation{game: gc.Name, err: err}
	}
	return validation{game: gc.Name, items: catalog.Size(), pool: catalog.PoolSize()}
}
