package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/lingweave/interlinear/encode"
	"github.com/lingweave/interlinear/format"
	"github.com/lingweave/interlinear/gloss"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	T bool `cli:"name=t aliases=text desc='render as column-padded text'"`
	H bool `cli:"name=h aliases=html desc='render as an html fragment'"`
	L bool `cli:"name=l aliases=latex desc='render as a latex (expex) example'"`
	J bool `cli:"name=j aliases=json desc='render as json'"`

	OutFormat *format.Format

	Cfg        *gloss.Config
	ConfigPath string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
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

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	c, err := gloss.LoadConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.ConfigPath = a
	cfg.Cfg = c
	return nil, nil
}

// glossConfig returns the loaded configuration, or the defaults when no
// -config was given.
func (cfg *MainConfig) glossConfig() *gloss.Config {
	if cfg.Cfg != nil {
		return cfg.Cfg
	}
	return gloss.DefaultConfig()
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.H:
		fmat = format.HTMLFormat
	case cfg.L:
		fmat = format.LaTeXFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if !cfg.outFormat().IsText() {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
