package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/lingweave/interlinear/encode"
	"github.com/lingweave/interlinear/filter"
	"github.com/lingweave/interlinear/gloss"
	"github.com/lingweave/interlinear/parse"
)

type RenderConfig struct {
	*MainConfig

	Filter *filter.Filter

	Render *cli.Command
}

func (cfg *RenderConfig) filterOpt(_ *cli.Context, a string) (any, error) {
	f, err := filter.Compile(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Filter = f
	return nil, nil
}

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return renderReader(cfg, cc.Out, "-", os.Stdin)
	}
	for _, file := range args {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		err = renderReader(cfg, cc.Out, file, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func renderReader(cfg *RenderConfig, w io.Writer, name string, r io.Reader) error {
	blocks, err := parse.Parse(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	gcfg := cfg.glossConfig()
	encOpts := cfg.encOpts(w)
	first := true
	for i, b := range blocks {
		if cfg.Filter != nil {
			ok, err := cfg.Filter.Match(filterEnv(i, &b))
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		g, err := gloss.Process(gcfg, b.Tiers)
		if err != nil {
			// a bad block does not abort the batch
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", name, b.Line, err)
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := encode.Encode(g, w, encOpts...); err != nil {
			return err
		}
	}
	return nil
}

func filterEnv(i int, b *parse.Block) filter.Env {
	texts := make([]string, len(b.Tiers))
	for j, t := range b.Tiers {
		texts[j] = t.Text
	}
	return filter.Env{
		Index: i,
		Tiers: texts,
		Text:  strings.Join(texts, "\n"),
	}
}
