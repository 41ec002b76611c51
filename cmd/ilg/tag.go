package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lingweave/interlinear/abbrev"
)

type TagConfig struct {
	*MainConfig

	Tag *cli.Command
}

func tagRun(cfg *TagConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tag.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no tokens given", cli.ErrUsage)
	}
	table := cfg.glossConfig().Abbreviations
	for _, tok := range args {
		if _, err := fmt.Fprintf(cc.Out, "%s:\n", tok); err != nil {
			return err
		}
		for _, s := range abbrev.Tag(tok, table) {
			if err := printSpan(cc, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSpan(cc *cli.Context, s abbrev.Span) error {
	var err error
	switch {
	case !s.Abbr:
		_, err = fmt.Fprintf(cc.Out, "\t%q\n", s.Text)
	case s.Definition == "":
		_, err = fmt.Fprintf(cc.Out, "\t%s\t(unknown)\n", s.Text)
	default:
		_, err = fmt.Fprintf(cc.Out, "\t%s\t%s\n", s.Text, s.Definition)
	}
	return err
}
