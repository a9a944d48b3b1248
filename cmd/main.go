package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitlab.com/webrequest.net/internal/adapter/logging"
	"gitlab.com/webrequest.net/internal/config"
)

var (
	// Global flags
	environment string

	sysCfg *config.AppConfig
	logger *logging.ZapLogger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "webrequest",
	Short: "Website request platform",
	Long: `Collects website requests through a validated form, stores them in the
configured key-value storage and lists past submissions.

Run "webrequest serve" to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := InitReader(environment); err != nil {
			return err
		}
		sysCfg = config.NewSystemConfig()
		if err := sysCfg.Validate(); err != nil {
			return err
		}
		logger = logging.NewZapLogger(sysCfg.DebugMode)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&environment, "env", "e", "", "load <env>.env before reading the environment")

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (defaults to the dated export name)")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(serveCmd, listCmd, exportCmd, clearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// InitReader loads <env>.env when an environment is named. A named file that
// does not exist is an error; no name means the process environment only.
func InitReader(env string) error {
	if env == "" {
		return nil
	}
	if err := godotenv.Load(env + ".env"); err != nil {
		return fmt.Errorf("error loading %s.env file: %w", env, err)
	}
	return nil
}
