package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"
)

type AbbrevsConfig struct {
	*MainConfig

	Abbrevs *cli.Command
}

func abbrevs(cfg *AbbrevsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Abbrevs.Parse(cc, args); err != nil {
		return err
	}
	table := cfg.glossConfig().Abbreviations
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", k, table[k]); err != nil {
			return err
		}
	}
	return nil
}
