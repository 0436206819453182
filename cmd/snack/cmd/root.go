// Package cmd contains all CLI commands for snack.
package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/snack/internal/config"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "snack",
	Short: "Snackable Games - daily guessing games in the terminal",
	Long: `Snack is a collection of daily guessing games: find the secret animal,
movie, tennis player, book, song or F1 driver of the day.

Every guess is compared to the secret attribute by attribute:
  ✓  same value
  ↑  the secret is higher (or better ranked)
  ↓  the secret is lower (or worse ranked)
  ~  some values shared
  ✗  different

Everyone gets the same secret on the same day.

Run 'snack init' once, then 'snack play <game>'.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(logging.Close)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/snack)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("date", "", "play as of this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Bool("utc", false, "roll over to the next secret at UTC midnight")
	rootCmd.PersistentFlags().String("data", "", "dataset directory (default is <config>/data)")
	rootCmd.PersistentFlags().String("db", "", "session database (default is <config>/snack.db)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("date", rootCmd.PersistentFlags().Lookup("date"))
	viper.BindPFlag("utc", rootCmd.PersistentFlags().Lookup("utc"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("db"))
}

// initConfig reads in .env, config dir and ENV variables if set.
func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	viper.SetEnvPrefix("SNACK")
	viper.AutomaticEnv()

	switch {
	case cfgFile != "":
		viper.Set("config_dir", cfgFile)
	case viper.GetString("config_dir") != "":
		// SNACK_CONFIG_DIR
	default:
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	level := viper.GetString("log_level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	if level == "" {
		level = "info"
	}
	if err := logging.Init(getConfigDir(), level); err != nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}
