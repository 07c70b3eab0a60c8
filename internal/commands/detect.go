package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
)

// NewDetectCommand creates a new cobra command for the detect subcommand.
// No key is needed, so only the positional args and the algorithm are checked.
func NewDetectCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [flags] files...",
		Short: "Report whether files look like ciphertext",
		Long: `Guess from content alone whether each file is ciphertext.
Text made only of digits and spaces is reported as encrypted, so plain
number lists are misclassified. Use encrypt, decrypt or auto to process files.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Files = args

			if err := cobraext.Validate(cfg); err != nil {
				return err
			}

			_, err := cfg.Cipher()

			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunDetect(cfg)
		},
	}
}
