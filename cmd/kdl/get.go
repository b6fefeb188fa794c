package main

import (
	"fmt"
	"strings"

	"github.com/ferronweb/kdlite/encode"
	"github.com/ferronweb/kdlite/format"
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	for _, arg := range argsOrStdin(args[1:]) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		doc, diags := parse.Parse(d)
		if err := reportDiags(cfg.MainConfig, argName(arg), diags); err != nil {
			return err
		}
		matches := getPath(doc, path)
		opts := cfg.encOpts(cc.Out, format.JSONFormat)
		if err := encode.Encode(&ir.Document{Nodes: matches}, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

// getPath resolves a dot-separated name path, level by level: each
// segment selects the matching nodes among the previous matches'
// children.
func getPath(doc *ir.Document, path []string) []*ir.Node {
	docs := []*ir.Document{doc}
	var matches []*ir.Node
	for _, seg := range path {
		matches = nil
		for _, d := range docs {
			matches = append(matches, d.Get(seg)...)
		}
		docs = nil
		for _, n := range matches {
			if n.Children != nil {
				docs = append(docs, n.Children)
			}
		}
	}
	return matches
}
