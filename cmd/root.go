package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/bookindex/internal/version"
	"github.com/spf13/cobra"
)

var cfgFile string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bookindex",
	Short: "Build a keyword index for a printed book",
	Long: `bookindex cross-references human keyword/section annotations against the
book's extracted page text and writes candidate page lists for every keyword.

Inputs are read from the input directory (default: current directory):
  book.json, Plurality Book Indexing Exercise - Candidates.csv,
  ignore.txt, case_sensitive.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("bookindex %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bookindex.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every keyword at debug level")
}

// newLogger builds the stderr logger for a command.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
