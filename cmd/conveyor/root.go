// Root command for the conveyor CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/internal/paths"
	"github.com/opsforge/conveyor/pkg/conveyor"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagActor     string
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configActor   string
)

var rootCmd = &cobra.Command{
	Use:     "conveyor",
	Short:   "Conveyor tracks system requests through eleven delivery stages",
	Version: conveyor.Version,
	Long: `Conveyor is a local-first tracker for system-development requests.
Each request rides the conveyor from requirement intake through design,
testing, review, training, go-live, indexing, and MIS integration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configActor = cfg.GetString(cfgKeyActor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.conveyor-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagActor, "actor", "", "acting user name for done-by fields")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(actorCmd)

	// One command per delivery stage past intake.
	rootCmd.AddCommand(understandingCmd)
	rootCmd.AddCommand(sampleDesignCmd)
	rootCmd.AddCommand(designUpdateCmd)
	rootCmd.AddCommand(approvalCmd)
	rootCmd.AddCommand(testingCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(trainingCmd)
	rootCmd.AddCommand(goLiveCmd)
	rootCmd.AddCommand(indexingCmd)
	rootCmd.AddCommand(integrationCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > CONVEYOR_DATA_DIR
// env > default $(CWD)/.conveyor-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CONVEYOR_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
