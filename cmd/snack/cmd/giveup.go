package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/tui"
	"github.com/spf13/cobra"
)

var giveupCmd = &cobra.Command{
	Use:   "giveup <game>",
	Short: "Give up today's game and reveal the secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runGiveUp,
}

func init() {
	rootCmd.AddCommand(giveupCmd)
	giveupCmd.Flags().Bool("json", false, "print the result as JSON")
}

func runGiveUp(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	g, err := openGame(args[0])
	if err != nil {
		return err
	}
	st, err := g.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, sess, err := g.daily(st)
	if err != nil {
		return err
	}

	secret := sess.GiveUp()
	if err := st.SaveTurn(rec.ID, engine.Turn{Clues: sess.Clues(), Status: sess.Status()}); err != nil {
		return fmt.Errorf("saving give up: %w", err)
	}
	logging.Info("gave up", "game", g.cfg.Name, "day", rec.Day, "attempts", sess.Attempts())

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(guessReport{
			Game:     g.cfg.Name,
			Day:      rec.Day,
			Guesses:  sess.Guesses(),
			Clues:    sess.Clues(),
			Status:   sess.Status().String(),
			Attempts: sess.Attempts(),
			Answer:   secret.Name,
		})
	}

	if sess.IsSolved() {
		fmt.Println(tui.WinStyle.Render("Already solved: " + secret.Name))
		return nil
	}
	fmt.Println(tui.RevealStyle.Render("The answer was " + secret.Name))
	fmt.Println()
	for _, a := range g.catalog.Schema().Attributes {
		fmt.Printf("  %s%s\n", tui.LabelStyle.Render(attrLabel(a)), tui.ValueStyle.Render(tui.FormatValue(secret, a)))
	}
	return nil
}
