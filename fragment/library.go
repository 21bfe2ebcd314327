package fragment

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

// libEntry is the on-disk form of one fragment in a library file.
type libEntry struct {
	Params []string `yaml:"params"`
	Body   string   `yaml:"body"`
}

// LoadLibrary reads a YAML fragment library mapping fragment names to
// their parameter lists and bodies:
//
//	mad:
//	  params: [x, y]
//	  body: |
//	    mul $x, $y;
//	    lea $x, [$x + $y];
//
// and returns a registry with every fragment defined.
func LoadLibrary(path string) (*Registry, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read library %q: %w", path, err)
	}
	return ParseLibrary(d)
}

// ParseLibrary is [LoadLibrary] for in-memory library bytes.
func ParseLibrary(d []byte) (*Registry, error) {
	var lib map[string]libEntry
	if err := yaml.Unmarshal(d, &lib); err != nil {
		return nil, fmt.Errorf("could not decode library: %w", err)
	}
	reg := NewRegistry()
	names := make([]string, 0, len(lib))
	for name := range lib {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := lib[name]
		if _, err := reg.Define(name, e.Params, e.Body); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
