package main

import (
	"fmt"
	"os"

	"github.com/ferronweb/kdlite/diag"
	"github.com/ferronweb/kdlite/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	colors := cfg.diagColors(cc.Out)
	total := 0
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		_, diags := parse.Parse(d)
		total += len(diags)
		if err := diag.Render(cc.Out, argName(arg), diags, colors); err != nil {
			return err
		}
	}
	if total > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// reportDiags renders diagnostics to stderr and turns a dirty parse
// into an error for commands that need a clean document.
func reportDiags(cfg *MainConfig, file string, diags diag.List) error {
	if len(diags) == 0 {
		return nil
	}
	if err := diag.Render(os.Stderr, file, diags, cfg.diagColors(os.Stderr)); err != nil {
		return err
	}
	return fmt.Errorf("%s: %d problems", file, len(diags))
}
