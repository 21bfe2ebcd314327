package main

import (
	"fmt"
	"strings"

	"github.com/asm-block/asmblock"
	"github.com/asm-block/asmblock/fragment"
	"github.com/asm-block/asmblock/token"

	"github.com/scott-cotton/cli"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	reg, err := expandRegistry(cfg)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(path string, d []byte) error {
		toks, err := token.Tokenize(nil, d)
		if err != nil {
			return err
		}
		toks, err = token.Nest(toks)
		if err != nil {
			return err
		}
		toks, err = fragment.Expand(reg, toks)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(cc.Out, asmblock.Render(toks)); err != nil {
			return fmt.Errorf("error writing: %w", err)
		}
		return nil
	})
}

// expandRegistry loads the -lib library, then applies -D defines in
// order.  Each define is a zero-argument fragment whose body is the
// evaluated expression; earlier defines are visible to later ones by
// name.
func expandRegistry(cfg *ExpandConfig) (*fragment.Registry, error) {
	var (
		reg *fragment.Registry
		err error
	)
	if cfg.Lib != "" {
		reg, err = fragment.LoadLibrary(cfg.Lib)
		if err != nil {
			return nil, err
		}
	} else {
		reg = fragment.NewRegistry()
	}
	env := map[string]any{}
	for _, def := range cfg.Defines {
		name, src, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -D wants name=expr, got %q", cli.ErrUsage, def)
		}
		val, toks, err := fragment.EvalArg(src, env)
		if err != nil {
			return nil, err
		}
		if _, err := reg.DefineTokens(name, nil, toks); err != nil {
			return nil, err
		}
		env[name] = val
	}
	return reg, nil
}
