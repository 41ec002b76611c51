package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/lingweave/interlinear/parse"
	"github.com/lingweave/interlinear/textdiff"
)

type FmtConfig struct {
	*MainConfig

	D bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	W bool `cli:"name=w desc='write result back to source files instead of stdout'"`

	Fmt *cli.Command
}

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.W {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return fmtOne(cfg, cc.Out, "<stdin>", string(src))
	}
	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := fmtOne(cfg, cc.Out, file, string(src)); err != nil {
			return err
		}
	}
	return nil
}

func fmtOne(cfg *FmtConfig, w io.Writer, name, src string) error {
	res, err := parse.Format(src, cfg.glossConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if cfg.D {
		if d := textdiff.Unified(src, res); d != "" {
			if _, err := fmt.Fprintf(w, "diff %s\n%s", name, d); err != nil {
				return err
			}
		}
		return nil
	}
	if cfg.W {
		if res == src {
			return nil
		}
		return os.WriteFile(name, []byte(res), 0644)
	}
	return writeAll(w, res)
}

func writeAll(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
