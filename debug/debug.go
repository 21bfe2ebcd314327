package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Render bool
	Expand bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("ASMB_DEBUG_TOKENS")
	d.Render = boolEnv("ASMB_DEBUG_RENDER")
	d.Expand = boolEnv("ASMB_DEBUG_EXPAND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Render() bool {
	return d.Render
}
func Expand() bool {
	return d.Expand
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
