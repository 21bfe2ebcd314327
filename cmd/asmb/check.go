package main

import (
	"fmt"
	"os"

	"github.com/asm-block/asmblock"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := renderInput(cc, args[0])
	if err != nil {
		return err
	}
	b, err := renderInput(cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, false)
	useColor := cfg.Color || checkIsTTY(cc)
	if cfg.Color {
		color.NoColor = false
	}
	for _, d := range diffs {
		var s string
		switch d.Type {
		case diffpatch.DiffDelete:
			s = d.Text
			if useColor {
				s = color.RedString("%s", s)
			} else {
				s = "[-" + s + "-]"
			}
		case diffpatch.DiffInsert:
			s = d.Text
			if useColor {
				s = color.GreenString("%s", s)
			} else {
				s = "[+" + s + "+]"
			}
		case diffpatch.DiffEqual:
			s = d.Text
		}
		if _, err := fmt.Fprint(cc.Out, s); err != nil {
			return fmt.Errorf("error writing: %w", err)
		}
	}
	if _, err := fmt.Fprintln(cc.Out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func renderInput(cc *cli.Context, path string) (string, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return "", err
	}
	out, err := asmblock.Block(string(d))
	if err != nil {
		return "", fmt.Errorf("error rendering %s: %w", path, err)
	}
	return out, nil
}

func checkIsTTY(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
