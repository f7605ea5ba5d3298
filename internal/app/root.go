package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/config"
	"github.com/minseon9/readtrack/internal/util"
	"github.com/minseon9/readtrack/internal/vault"
)

var (
	cfg   *config.Config
	store *vault.Store

	flagNoColor bool
)

var appVersion = "dev"

// SetVersion is called from main with the release version.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "readtrack",
	Short: "Track reading progress across a vault of markdown book records",
	Long: `readtrack manages reading progress for books kept as markdown documents.

Each document carries a frontmatter header (status, pages, a compact
session summary) and a detailed "Reading History" section in its body.
readtrack keeps the two in sync and derives library-wide statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			// init must be able to run before a config exists.
			if cmd.Name() == "init" {
				cfg = &config.Config{}
				return nil
			}
			return fmt.Errorf("loading config: %w", err)
		}

		store = vault.NewStore(cfg.Vault.Dir)
		return nil
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newLogCmd(),
		newStatusCmd(),
		newListCmd(),
		newInfoCmd(),
		newStatsCmd(),
		newValidateCmd(),
		newRecentCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}
