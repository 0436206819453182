package cmd

import (
	"fmt"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/share"
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <game>",
	Short: "Copy today's result grid to the clipboard",
	Long: `Print today's result as a grid of coloured squares, one row per guess,
and copy it to the clipboard. Item names are left out so the grid can be
posted without spoiling the answer.

Example:
  snack share animal
  snack share animal --print`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().Bool("print", false, "only print the grid")
}

func runShare(cmd *cobra.Command, args []string) error {
	printOnly, _ := cmd.Flags().GetBool("print")

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
	if sess.Status() == engine.InProgress {
		return fmt.Errorf("today's %s game is not finished yet", g.cfg.Name)
	}

	grid := share.Grid(g.cfg.Name, rec.Day, sess)
	fmt.Println(grid)
	if printOnly {
		return nil
	}
	if err := share.Copy(grid); err != nil {
		return err
	}
	fmt.Println("\nCopied to clipboard.")
	return nil
}
