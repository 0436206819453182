package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/snack/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize snack configuration",
	Long: `Initialize snack configuration files in your config directory.

This creates:
  - games.yaml     (the games, their datasets and attributes)
  - settings.yaml  (day boundary, data directory, database, log level)
  - data/          (where game datasets are looked up)

Put a dataset for each game into data/ (or import one from CSV with
'snack import'), then check them with 'snack validate'.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	gamesPath := filepath.Join(configDir, config.GamesFile)
	if _, err := os.Stat(gamesPath); err == nil && !force {
		return fmt.Errorf("configuration already exists: %s\nUse --force to overwrite", gamesPath)
	}

	if err := os.MkdirAll(filepath.Join(configDir, "data"), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Printf("Initializing snack configuration in %s\n\n", configDir)

	if err := config.SaveGames(gamesPath, config.DefaultGames()); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", config.GamesFile)

	if err := config.SaveSettings(filepath.Join(configDir, config.SettingsFile), config.DefaultSettings()); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", config.SettingsFile)
	fmt.Printf("  Created data/\n")

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Copy game datasets into the data/ directory")
	fmt.Println("  2. Run 'snack validate' to check them")
	fmt.Println("  3. Run 'snack play <game>' to play today's game")

	return nil
}

// ensureParent creates the directory holding path.
func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
