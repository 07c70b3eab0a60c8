// Command symcrypt encrypts and decrypts files with AES or XOR.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/symcrypt/internal/commands"
	"github.com/idelchi/symcrypt/internal/config"
)

// version is set at build time with -ldflags.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
