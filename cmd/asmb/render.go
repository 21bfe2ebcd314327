package main

import (
	"fmt"

	"github.com/asm-block/asmblock"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(path string, d []byte) error {
		out, err := asmblock.Block(string(d))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(cc.Out, out); err != nil {
			return fmt.Errorf("error writing: %w", err)
		}
		return nil
	})
}
