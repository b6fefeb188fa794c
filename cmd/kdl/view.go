package main

import (
	"github.com/ferronweb/kdlite/encode"
	"github.com/ferronweb/kdlite/format"
	"github.com/ferronweb/kdlite/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		doc, diags := parse.Parse(d)
		if err := reportDiags(cfg.MainConfig, argName(arg), diags); err != nil {
			return err
		}
		opts := cfg.encOpts(cc.Out, format.TreeFormat)
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
