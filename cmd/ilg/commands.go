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
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "config",
			Description: "YAML configuration file (pattern, abbreviations, flags)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, html/h, latex/l, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ilg").
		WithSynopsis("ilg [opts] command [opts]").
		WithDescription("ilg renders interlinear glosses from tiered text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ilgMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			FmtCommand(cfg),
			TokenizeCommand(cfg),
			TagCommand(cfg),
			AbbrevsCommand(cfg),
			JaCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "filter",
		Description: "render only blocks matching the expression",
		Type:        cli.NamedFuncOpt(cfg.filterOpt, "(expr)"),
	})
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [-filter expr] [files]").
		WithDescription("render gloss documents (stdin when no files)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("re-pad the tier columns of gloss source files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func TokenizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokenizeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tokenize").
		WithAliases("tok").
		WithSynopsis("tokenize [tier texts]").
		WithDescription("print the tokens of tier texts (stdin lines when no args)").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokenize(cfg, cc, args)
		})
	cfg.Tokenize = cmd
	return cmd
}

func TagCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tag").
		WithSynopsis("tag <token> [token...]").
		WithDescription("tag tokens and print recognized abbreviation codes").
		WithRun(func(cc *cli.Context, args []string) error {
			return tagRun(cfg, cc, args)
		})
	cfg.Tag = cmd
	return cmd
}

func AbbrevsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AbbrevsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("abbrevs").
		WithAliases("a").
		WithSynopsis("abbrevs").
		WithDescription("list the active abbreviation table").
		WithRun(func(cc *cli.Context, args []string) error {
			return abbrevs(cfg, cc, args)
		})
	cfg.Abbrevs = cmd
	return cmd
}

func JaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "free",
		Description: "free translation appended as the last tier",
		Type:        cli.NamedFuncOpt(cfg.freeOpt, "(text)"),
	})
	cmd := cli.NewCommand("ja").
		WithSynopsis("ja [-free text] <sentence> [sentence...]").
		WithDescription("gloss Japanese sentences via morphological analysis").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ja(cfg, cc, args)
		})
	cfg.Ja = cmd
	return cmd
}
