package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/config"
	"github.com/minseon9/readtrack/internal/journal"
)

func newInitCmd() *cobra.Command {
	var (
		vaultDir string
		heading  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the readtrack config and vault directory",
		Long: `Write the config file and make sure the vault directory exists.

Examples:
  readtrack init --vault ~/vault
  readtrack init --vault ~/notes/books --heading "## Reading Log"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vaultDir == "" {
				return fmt.Errorf("--vault is required")
			}
			vaultDir = config.ExpandHome(vaultDir)
			if err := os.MkdirAll(vaultDir, 0755); err != nil {
				return fmt.Errorf("creating vault directory: %w", err)
			}

			cfg := &config.Config{
				Vault: config.VaultConfig{
					Dir:           vaultDir,
					DefaultStatus: "unread",
				},
				History: config.HistoryConfig{Heading: heading},
				Journal: config.JournalConfig{Path: journal.DefaultPath()},
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok("Config written to %s", config.DefaultPath())
			ok("Vault directory: %s", vaultDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&vaultDir, "vault", "", "Vault directory holding book documents")
	cmd.Flags().StringVar(&heading, "heading", "## Reading History", "Section heading for the detailed log")

	return cmd
}
