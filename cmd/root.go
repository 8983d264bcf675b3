package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/config"
	"github.com/kaptenjon/mathquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathquest",
	Short: "Math practice game for kids",
	Long: `Math Quest is a terminal math game for children in pre-school to grade 5.
Questions adapt to the player's grade and recent answers, correct answers
earn points and points unlock new avatars.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHQUEST_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Language tag such as en or sv (overrides MATHQUEST_LANG and the profile)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file to load before reading the environment")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the dotenv file named by --env-file and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(envFile)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHQUEST_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLanguage picks the --lang flag, then MATHQUEST_LANG, then the
// profile's saved language. Empty means the system language.
func resolveLanguage(cmd *cobra.Command, cfg config.Config, saved string) string {
	if l, _ := cmd.Flags().GetString("lang"); l != "" {
		return l
	}
	if cfg.Language != "" {
		return cfg.Language
	}
	return saved
}
