package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kaw393939/qrgen/cmd/qrgen"
	"github.com/kaw393939/qrgen/internal/adapters/config"
	"github.com/spf13/pflag"

	_ "time/tzdata"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit status. An uncreatable output directory
// exits 1 from inside Start.
func run(args []string, stderr io.Writer) int {
	cfg, err := config.Get(args)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, config.ErrUsage):
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}

	app, err := qrgen.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}

	// The result is already logged; a failed QR code still exits 0
	app.Start()
	return 0
}
