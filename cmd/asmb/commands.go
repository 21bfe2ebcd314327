package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts := []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}
	return cli.NewCommandAt(&cfg.Main, "asmb").
		WithSynopsis("asmb [opts] command [opts]").
		WithDescription("asmb is a tool for composing and normalizing assembler text fragments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return asmbMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			ExpandCommand(cfg),
			TokensCommand(cfg),
			CheckCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("render assembler fragment files (or stdin) to normalized text").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "D",
		Description: "define a zero-argument fragment from an expression",
		Type:        cli.NamedFuncOpt(cfg.defineOpt, "(name=expr)"),
	})
	cmd := cli.NewCommand("expand").
		WithAliases("e", "x").
		WithSynopsis("expand [-lib lib.yaml] [-D name=expr]... [files]").
		WithDescription("expand name!(...) fragment invocations, then render").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func (cfg *ExpandConfig) defineOpt(cc *cli.Context, a string) (any, error) {
	cfg.Defines = append(cfg.Defines, a)
	return a, nil
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t").
		WithSynopsis("tokens [-n] [files]").
		WithDescription("dump the token stream of assembler fragment files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <a> <b>").
		WithDescription("render two fragment files and diff the results").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
