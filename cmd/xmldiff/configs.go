package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/structdiff/xmldiff"
	"github.com/structdiff/xmldiff/encode"
)

type MainConfig struct {
	NoValues bool `cli:"name=novalues desc='compare raw strings, no value type matching'"`
	NoDetail bool `cli:"name=nodetail desc='report a changed subtree as one entry'"`
	Case     bool `cli:"name=case desc='case sensitive value comparison'"`
	TwoWay   bool `cli:"name=2way desc='match both ways and report moves'"`

	CSV   bool `cli:"name=csv desc='output flattened csv'"`
	JSON  bool `cli:"name=json aliases=j desc='output structured json'"`
	YAML  bool `cli:"name=yaml aliases=y desc='output structured yaml'"`
	Patch bool `cli:"name=patch desc='output rfc 6902 json patch'"`

	Color bool `cli:"name=color desc='colorize text output'"`

	Ignore string `cli:"name=ignore desc='value types to ignore, e.g. double|datetime'"`
	Filter string `cli:"name=filter desc='entry filter expression, e.g. change==\"Modified\"'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) diffOpts() []xmldiff.Option {
	opts := []xmldiff.Option{
		xmldiff.MatchValueTypes(!cfg.NoValues),
		xmldiff.MatchDescendants(!cfg.NoDetail),
		xmldiff.IgnoreCase(!cfg.Case),
		xmldiff.TwoWayMatch(cfg.TwoWay),
	}
	if cfg.Ignore != "" {
		opts = append(opts, xmldiff.IgnoreTypeTokens(cfg.Ignore))
	}
	return opts
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
