package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	rootCmd = &cobra.Command{
		Use:   "personnummer",
		Short: "Validate Swedish personal identity numbers",
		Long: `personnummer validates Swedish personal identity numbers and
coordination numbers: format, checksum, date plausibility, and the
century/separator rules. Valid inputs are normalized and annotated
with age, gender, number type, and birthplace county where known.`,
	}
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
