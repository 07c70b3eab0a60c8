package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/symcrypt/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// Flags are persistent so every subcommand accepts them. The root command binds
// them and the SYMCRYPT_* environment variables into viper.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "symcrypt [flags] command [flags]"
	root.Short = "Symmetric file encryption utility"
	root.Long = `A file encryption utility for AES (ECB, PKCS7) and repeating-key XOR.
Ciphertext is stored as decimal byte values separated by spaces.`

	addFlags(root.PersistentFlags())

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewAutoCommand(cfg),
		NewDetectCommand(cfg),
		NewGenerateCommand(),
	)

	return root
}

// addFlags registers the flags shared by all file processing commands.
func addFlags(flags *pflag.FlagSet) {
	flags.Bool("show", false, "Show the configuration and exit")

	flags.StringP("key", "k", "", "Encryption key")
	flags.StringP("key-file", "f", "", "Path to a file holding the encryption key")
	flags.BoolP("hex", "x", false, "Key is hex encoded")
	flags.StringP("algorithm", "a", "aes", "Cipher to use: aes or xor")

	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	flags.BoolP("dry", "n", false, "Show what would be processed without writing anything")
	flags.BoolP("stats", "s", false, "Print statistics when done")
	flags.BoolP("preserve-timestamps", "p", false, "Copy the modification time of the input to the output")

	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-prefix", "decrypted_", "Prefix for decrypted file names")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
}
