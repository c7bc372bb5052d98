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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Aliases:     []string{"output"},
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treejson").
		WithSynopsis("treejson [-o file] [-object] [file]").
		WithDescription("treejson converts MUI tree view HTML into JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treejson(cfg, cc, args)
		})
}
