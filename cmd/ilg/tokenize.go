package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

type TokenizeConfig struct {
	*MainConfig

	Tokenize *cli.Command
}

func tokenize(cfg *TokenizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokenize.Parse(cc, args)
	if err != nil {
		return err
	}
	pat := cfg.glossConfig().Pattern
	if len(args) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if err := tokenizeLine(cc, pat.Tokenize(sc.Text())); err != nil {
				return err
			}
		}
		return sc.Err()
	}
	for _, a := range args {
		if err := tokenizeLine(cc, pat.Tokenize(a)); err != nil {
			return err
		}
	}
	return nil
}

func tokenizeLine(cc *cli.Context, toks []string) error {
	_, err := fmt.Fprintf(cc.Out, "%s\n", strings.Join(toks, "\t"))
	return err
}
