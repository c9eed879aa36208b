package cmd

import (
	"log/slog"
	"os"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag names, also used as settings keys.
const (
	gitDirFlag  = "git-dir"
	strictFlag  = "strict"
	verboseFlag = "verbose"
)

// settings merges global flags with GOGIT_* environment variables.
// Flags win over the environment, the environment wins over the config file.
var settings = viper.New()

// rootCmd defines the base command for the gogit CLI.
// All subcommands (init, hash-object, cat-file, ls-tree) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gogit",
	Short: "A content-addressable object store in GO",
	Long: `GoGit is a simplified Git object database developed in GO. It stores file contents (blobs)
	and directory listings (trees) under the SHA-1 of their bytes, compressed with zlib.`,
	PersistentPreRun: configureLogging,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(gitDirFlag, "", "Path to the .gogit directory (default: search upwards from the working directory)")
	flags.Bool(strictFlag, false, "Verify declared sizes and object hashes when reading")
	flags.BoolP(verboseFlag, "v", false, "Enable debug logging on stderr")

	settings.SetEnvPrefix(constants.EnvPrefix)
	settings.AutomaticEnv()
	// GOGIT_DIR rather than the automatic GOGIT_GIT-DIR
	_ = settings.BindEnv(gitDirFlag, constants.EnvPrefix+"_DIR")
	_ = settings.BindPFlags(flags)
}

// configureLogging switches the default slog logger to debug level when requested.
func configureLogging(cmd *cobra.Command, _ []string) {
	if !settings.GetBool(verboseFlag) {
		return
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
