package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/rijndael"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a random hex encoded key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunGenerate(cmd.OutOrStdout(), size)
		},
	}

	cmd.Flags().IntVarP(&size, "bytes", "b", rijndael.KeySize256, "Key length in bytes: 16, 24 or 32")

	return cmd
}
