package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/snack"
	"github.com/f3rmion/snack/internal/tui"
	"github.com/spf13/cobra"
)

var guessCmd = &cobra.Command{
	Use:   "guess <game> <name>...",
	Short: "Submit guesses for today's game without the UI",
	Long: `Submit one or more guesses against today's secret and print the
feedback for each, followed by the clue summary. Guesses are added to the
same saved game that 'snack play' uses.

Names are matched ignoring case and accents. Quote names with spaces.

Example:
  snack guess animal cow "polar bear"
  snack guess tennis "Gael Monfils" --json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGuess,
}

func init() {
	rootCmd.AddCommand(guessCmd)
	guessCmd.Flags().Bool("json", false, "print the result as JSON")
}

// guessReport is the --json output of guess and giveup.
type guessReport struct {
	Game     string           `json:"game"`
	Day      string           `json:"day"`
	Guesses  []engine.Guess   `json:"guesses"`
	Rejected []string         `json:"rejected,omitempty"`
	Clues    engine.ClueState `json:"clues"`
	Status   string           `json:"status"`
	Attempts int              `json:"attempts"`
	Answer   string           `json:"answer,omitempty"`
}

func runGuess(cmd *cobra.Command, args []string) error {
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

	report := guessReport{Game: g.cfg.Name, Day: rec.Day, Guesses: []engine.Guess{}}
	for _, name := range args[1:] {
		if sess.IsGameOver() {
			report.Rejected = append(report.Rejected, fmt.Sprintf("%s: game is over", name))
			continue
		}
		turn, err := sess.SubmitName(g.catalog, name)
		if err != nil {
			if !errors.Is(err, snack.ErrUnknownItem) && !errors.Is(err, snack.ErrDuplicateGuess) {
				return err
			}
			report.Rejected = append(report.Rejected, err.Error())
			continue
		}
		if err := st.SaveTurn(rec.ID, turn); err != nil {
			return fmt.Errorf("saving guess: %w", err)
		}
		logging.Info("guess", "game", g.cfg.Name, "name", turn.Guess.Name, "status", turn.Status)
		report.Guesses = append(report.Guesses, turn.Guess)
	}

	report.Clues = sess.Clues()
	report.Status = sess.Status().String()
	report.Attempts = sess.Attempts()
	if sess.IsGameOver() {
		report.Answer = sess.Secret().Name
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, r := range report.Rejected {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(r))
	}
	schema := g.catalog.Schema()
	for _, gs := range report.Guesses {
		printGuess(schema, gs)
	}
	printSummary(schema, sess)
	return nil
}

// printGuess prints one guess with a line per attribute.
func printGuess(schema snack.Schema, g engine.Guess) {
	fmt.Println(tui.NameStyle.Render(g.Name))
	for _, a := range schema.Attributes {
		style := tui.VerdictStyle(g.Comparison.Verdict(a.Name))
		fmt.Printf("  %s%s\n", tui.LabelStyle.Render(attrLabel(a)), style.Render(tui.Cell(g, a)))
	}
	fmt.Println()
}

// printSummary prints the clue summary and the game state.
func printSummary(schema snack.Schema, sess *engine.Session) {
	fmt.Println(tui.HeaderStyle.Render("Clues"))
	for _, line := range strings.Split(tui.RenderClues(schema, sess.Clues()), "\n") {
		fmt.Println("  " + line)
	}
	fmt.Println()

	switch {
	case sess.IsSolved():
		fmt.Println(tui.WinStyle.Render(fmt.Sprintf("Solved in %d %s!", sess.Attempts(), pluralize(sess.Attempts(), "guess", "guesses"))))
	case sess.GaveUp():
		fmt.Println(tui.RevealStyle.Render("The answer was " + sess.Secret().Name))
	default:
		fmt.Println(tui.HelpStyle.Render(fmt.Sprintf("%d %s so far", sess.Attempts(), pluralize(sess.Attempts(), "guess", "guesses"))))
	}
}

func attrLabel(a snack.Attribute) string {
	if a.Label != "" {
		return a.Label
	}
	return a.Name
}
