package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xmldiff").
		WithSynopsis("xmldiff [opts] <from.xml> <to.xml>").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlDiff(cfg, cc, args)
		})
}

const mainDescription = `xmldiff compares two xml documents structurally and reports the
differences per node rather than per line.

Values are compared by classified type by default, so "1", "1.0" and
"01" compare equal as numbers and "2024-01-02" equals
"2024-01-02T00:00:00".  Use -novalues for raw string comparison, or
-ignore to treat selected types as plain strings.

With -2way the comparison runs in both directions and a node deleted
in one place and inserted in another is reported as a single move.

Output is a line per change by default; -csv, -json, -yaml and
-patch select other renderings.  -filter keeps only entries matching
an expression over path, toPath, name, change, from and to, e.g.

  xmldiff -filter 'change == "Modified"' a.xml b.xml
  xmldiff -csv -ignore 'double|datetime' a.xml b.xml`
