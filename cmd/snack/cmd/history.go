package cmd

import (
	"fmt"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/tui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <game>",
	Short: "Show past sessions of a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 10, "number of sessions to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := cfg.Game(args[0]); err != nil {
		return err
	}

	st, err := openStore(cfg.Settings)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.History(args[0], limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No %s games played yet.\n", args[0])
		return nil
	}

	for _, r := range records {
		var result string
		switch r.Status {
		case engine.Solved:
			result = tui.WinStyle.Render(fmt.Sprintf("solved in %d", len(r.Guesses)))
		case engine.GivenUp:
			result = tui.RevealStyle.Render(fmt.Sprintf("gave up after %d (%s)", len(r.Guesses), r.Secret))
		default:
			result = tui.HelpStyle.Render(fmt.Sprintf("in progress, %d %s", len(r.Guesses), pluralize(len(r.Guesses), "guess", "guesses")))
		}
		fmt.Printf("%s  %-8s  %s\n", r.Day, r.Mode, result)
	}
	return nil
}
