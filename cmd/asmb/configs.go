package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Out      string
	CloseOut func() error

	Main *cli.Command
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

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type ExpandConfig struct {
	*MainConfig

	Lib string `cli:"name=lib desc='fragment library file (yaml)'"`

	// name=expr pairs from -D, evaluated in order at run time
	Defines []string

	Expand *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Nested bool `cli:"name=n desc='dump nested groups instead of the flat stream'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored diff output'"`

	Check *cli.Command
}
