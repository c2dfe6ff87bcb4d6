package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ria-cpu/poi/cmd/poi/internal/ops"
)

func main() {

	var (
		errS string
		kctx = kong.Parse(&ops.CLI,
			kong.Name("poi"),
			kong.Description("Inspect and build BIFF8 WINDOW2 records"),
		)
	)

	switch kctx.Command() {
	case "dump", "dump <file>":
		if err := ops.RunDump(); err != nil {
			errS = fmt.Sprintf("fail dump: %v", err)
		}
	case "scan", "scan <file>":
		if err := ops.RunScan(); err != nil {
			errS = fmt.Sprintf("fail scan: %v", err)
		}
	case "verify", "verify <file>":
		if err := ops.RunVerify(); err != nil {
			errS = fmt.Sprintf("fail verify: %v", err)
		}
	case "encode":
		if err := ops.RunEncode(); err != nil {
			errS = fmt.Sprintf("fail encode: %v", err)
		}
	case "flags":
		ops.RunFlags()
	default:
		errS = fmt.Sprintf("unknown command '%s'", kctx.Command())
	}

	if errS != "" {
		fmt.Fprintf(os.Stderr, "poi: %s\n", errS)
		os.Exit(1)
	}
}
