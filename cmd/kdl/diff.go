package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ferronweb/kdlite/encode"
	"github.com/ferronweb/kdlite/format"
	"github.com/ferronweb/kdlite/parse"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := canonical(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := canonical(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return nil
	}
	if cfg.useColor(cc.Out) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		printDiffs(cc, diffs)
	}
	return cli.ExitCodeErr(1)
}

// canonical parses a file and renders its canonical JSON form, the
// shared currency of structural comparison.
func canonical(cfg *DiffConfig, arg string) (string, error) {
	d, err := readArg(arg)
	if err != nil {
		return "", err
	}
	doc, diags := parse.Parse(d)
	if err := reportDiags(cfg.MainConfig, argName(arg), diags); err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printDiffs(cc *cli.Context, diffs []diffpatch.Diff) {
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
		}
	}
}
