package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/f3rmion/snack/internal/dataset"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/snack"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <game> <file.csv>",
	Short: "Convert a CSV export into a game dataset",
	Long: `Convert a CSV file into the game's dataset (one JSON object per line).

Columns are matched to attribute fields ignoring case, underscores and
dashes, so a "world_championships" column fills "worldChampionships".
Set-valued cells hold values separated by "|" (see the game's import
settings in games.yaml). Empty numeric cells count as 0. Rows that cannot
be read are skipped and listed.

Example:
  snack import f1 drivers.csv
  snack import movie films.csv -o movies.jsonl`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("output", "o", "", "output file (default is the game's dataset)")
	importCmd.Flags().String("separator", "", "separator inside set-valued cells")
}

func runImport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	separator, _ := cmd.Flags().GetString("separator")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gc, err := cfg.Game(args[0])
	if err != nil {
		return err
	}
	schema, err := gc.Schema()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading csv: %w", err)
	}

	var opts dataset.ImportOptions
	if ic := gc.Import; ic != nil {
		opts.ListSeparator = ic.ListSeparator
		opts.Columns = ic.Columns
		opts.DifficultyFrom = ic.DifficultyFrom
		opts.EasyAt = ic.EasyAt
		opts.MediumAt = ic.MediumAt
	}
	if separator != "" {
		opts.ListSeparator = separator
	}

	rows := bytes.Count(bytes.TrimRight(data, "\n"), []byte("\n"))
	bar := progressbar.Default(int64(rows), "importing")
	report, err := dataset.ImportCSV(bytes.NewReader(data), schema, opts, func(int) {
		bar.Add(1)
	})
	bar.Finish()
	if err != nil {
		return err
	}

	if output == "" {
		output = gc.DatasetPath(dataDir(cfg.Settings))
	}
	if err := ensureParent(output); err != nil {
		return err
	}
	if err := dataset.WriteFile(output, report.Items, schema); err != nil {
		return err
	}

	for _, s := range report.Skipped {
		logging.Warn("skipped csv row", "game", gc.Name, "row", s.Row, "err", s.Err)
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", s)
	}
	fmt.Printf("\nWrote %d items to %s (%d rows skipped)\n", len(report.Items), output, len(report.Skipped))

	counts := dataset.CountDifficulties(report.Items)
	fmt.Printf("  easy: %d  medium: %d  hard: %d\n", counts[snack.Easy], counts[snack.Medium], counts[snack.Hard])

	eligible, err := gc.Eligible()
	if err != nil {
		return err
	}
	if _, err := engine.SecretPool(report.Items, eligible...); err != nil {
		logging.Warn("import has no secret pool", "game", gc.Name, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v; the game cannot pick a daily secret\n", err)
	}
	return nil
}
