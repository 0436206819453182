package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/share"
	"github.com/f3rmion/snack/internal/store"
	"github.com/f3rmion/snack/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play today's game in the terminal UI",
	Long: `Play a game interactively. Start typing a name and pick from the
suggestions; each guess shows how it compares to the secret and the clue
summary narrows down what is left.

Today's game is saved as you play, so quitting and running 'snack play'
again resumes it. With --practice a random secret is drawn instead.

Example:
  snack play animal
  snack play tennis --practice`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("practice", false, "play a random secret instead of today's")
}

func runPlay(cmd *cobra.Command, args []string) error {
	practice, _ := cmd.Flags().GetBool("practice")

	g, err := openGame(args[0])
	if err != nil {
		return err
	}
	st, err := g.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		rec  *store.Record
		sess *engine.Session
	)
	if practice {
		rec, sess, err = g.practice(st)
	} else {
		rec, sess, err = g.daily(st)
	}
	if err != nil {
		return err
	}

	title := g.title()
	if practice {
		title += " (practice)"
	} else {
		title += " · " + rec.Day
	}

	save := func(turn engine.Turn) error {
		return st.SaveTurn(rec.ID, turn)
	}

	grid := func(s *engine.Session) error {
		return share.Copy(share.Grid(g.cfg.Name, rec.Day, s))
	}

	p := tea.NewProgram(
		tui.New(title, g.catalog, sess, save).WithShare(grid),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	switch {
	case sess.IsSolved():
		fmt.Printf("Solved %s in %d %s.\n", g.title(), sess.Attempts(), pluralize(sess.Attempts(), "guess", "guesses"))
	case sess.GaveUp():
		fmt.Printf("The answer was %s.\n", sess.Secret().Name)
	default:
		fmt.Printf("Progress saved after %d %s. Run 'snack play %s' to continue.\n", sess.Attempts(), pluralize(sess.Attempts(), "guess", "guesses"), g.cfg.Name)
	}
	return nil
}

// practice resumes an unfinished practice round or draws a new secret.
func (g *game) practice(st *store.Store) (*store.Record, *engine.Session, error) {
	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	secret, err := engine.PracticeSecret(g.catalog.Pool(), rng)
	if err != nil {
		return nil, nil, err
	}

	rec, _, err := st.StartOrResume(g.cfg.Name, now.Format(store.DayFormat), store.Practice, secret.Name)
	if err != nil {
		return nil, nil, err
	}
	sess, err := store.Restore(rec, g.catalog.Schema(), g.catalog)
	if err != nil {
		return nil, nil, err
	}
	return rec, sess, nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
