package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/logger"
)

var cleanSkipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the layout store and log files",
	Long: `Removes the layout store file (or SQLite database) and the debug log.
Unlike "layout reset" this deletes the files themselves.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return runCleanWithReader(cfg, os.Stdin, cmd.OutOrStdout())
}

// storeFiles lists the files that make up the configured layout store.
func storeFiles(cfg *config.Config) []string {
	path := cfg.StorePath()
	switch cfg.StoreKind() {
	case config.StoreFile:
		return []string{path}
	case config.StoreSQLite:
		return []string{path, path + "-wal", path + "-shm"}
	}
	return nil
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(cfg *config.Config, input io.Reader, out io.Writer) error {
	var existing []string
	for _, f := range storeFiles(cfg) {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	_, logErr := os.Stat(logger.DefaultLogPath)
	hasLog := logErr == nil

	if len(existing) == 0 && !hasLog {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, f := range existing {
		fmt.Fprintf(out, "  - %s\n", f)
	}
	if hasLog {
		fmt.Fprintf(out, "  - %s\n", logger.DefaultLogPath)
	}

	// Confirm unless --yes flag is set
	if !cleanSkipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, f := range existing {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", f, err)
			continue
		}
		removed++
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if removed > 0 {
		fmt.Fprintf(out, "  - %d layout file(s) removed\n", removed)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
