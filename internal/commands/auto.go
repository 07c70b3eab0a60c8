package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
)

// NewAutoCommand creates a new cobra command for the auto subcommand.
func NewAutoCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "auto [flags] files...",
		Short: "Decrypt files ending in the encrypt extension, encrypt all others",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Auto = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
