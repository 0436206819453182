package cmd

import (
	"fmt"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <game>",
	Short: "Draw today's multi-round match",
	Long: `Draw the day's match: several distinct secrets played in a fixed
order, the same for everyone on the same date. The draw stays hidden
unless --reveal is given.

Example:
  snack match music
  snack match music --reveal --date 2025-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().IntP("size", "n", 0, "number of rounds (default is the game's match_size, or 5)")
	matchCmd.Flags().Bool("reveal", false, "print the drawn items")
}

func runMatch(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	reveal, _ := cmd.Flags().GetBool("reveal")

	g, err := openGame(args[0])
	if err != nil {
		return err
	}
	if size == 0 {
		size = g.cfg.MatchSize
	}
	if size == 0 {
		size = 5
	}

	date, err := today(g.settings)
	if err != nil {
		return err
	}
	draw, err := engine.DrawMatch(g.catalog.Pool(), date, size)
	if err != nil {
		return err
	}

	fmt.Printf("%s match for %s: %d rounds\n", g.title(), date.Format("2006-01-02"), len(draw))
	if !reveal {
		return nil
	}
	for i, it := range draw {
		fmt.Printf("  %d. %s\n", i+1, it.Name)
	}
	return nil
}
