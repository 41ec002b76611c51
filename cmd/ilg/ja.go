package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/lingweave/interlinear/encode"
	"github.com/lingweave/interlinear/gloss"
	"github.com/lingweave/interlinear/morph"
)

type JaConfig struct {
	*MainConfig

	Free string

	Ja *cli.Command
}

func (cfg *JaConfig) freeOpt(_ *cli.Context, a string) (any, error) {
	cfg.Free = a
	return nil, nil
}

func ja(cfg *JaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ja.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no sentences given", cli.ErrUsage)
	}
	g, err := morph.New()
	if err != nil {
		return err
	}
	gcfg := *cfg.glossConfig()
	gcfg.FirstTierIsOriginal = true
	gcfg.LastTierIsFreeTranslation = cfg.Free != ""
	encOpts := cfg.encOpts(cc.Out)
	for i, sent := range args {
		texts := append([]string{sent}, g.Tiers(sent)...)
		if cfg.Free != "" {
			texts = append(texts, cfg.Free)
		}
		res, err := gloss.ProcessTexts(&gcfg, texts)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
