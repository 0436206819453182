package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <game> <text>",
	Short: "List guessable names matching some text",
	Long: `Search a game's names the way the autocomplete does: names starting
with the text first, then names containing it. Case and accents are ignored.

Example:
  snack search tennis "nad"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("limit", "n", 10, "maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	g, err := openGame(args[0])
	if err != nil {
		return err
	}

	query := strings.Join(args[1:], " ")
	results := g.catalog.Search(query, limit)
	if len(results) == 0 {
		fmt.Printf("No names match %q\n", query)
		return nil
	}
	for _, it := range results {
		fmt.Println(it.Name)
	}
	return nil
}
