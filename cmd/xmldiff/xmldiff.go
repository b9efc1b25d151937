package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/structdiff/xmldiff"
	"github.com/structdiff/xmldiff/encode"
	"github.com/structdiff/xmldiff/ir"
	"github.com/structdiff/xmldiff/parse"
)

func xmlDiff(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: need exactly two files, got %d", cli.ErrUsage, len(args))
	}
	if count(cfg.CSV, cfg.JSON, cfg.YAML, cfg.Patch) > 1 {
		return fmt.Errorf("%w: at most one of -csv -json -yaml -patch", cli.ErrUsage)
	}
	from, err := parseFile(args[0])
	if err != nil {
		return err
	}
	to, err := parseFile(args[1])
	if err != nil {
		return err
	}
	opts, err := xmldiff.NewOptions(cfg.diffOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res := xmldiff.Compare(from, to, opts)
	if cfg.Filter != "" {
		res, err = res.Filter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	switch {
	case cfg.CSV:
		return encode.CSV(res, cc.Out)
	case cfg.JSON:
		d, err := encode.Structured(res).JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	case cfg.YAML:
		d, err := encode.Structured(res).YAML()
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	case cfg.Patch:
		_, d, err := encode.JSONPatch(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	return encode.Text(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func parseFile(path string) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.Label(path))
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
