// Package flagx helps several independent parsers share one command line:
// each parser keeps only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"strings"
)

// Owned describes a flag a parser is responsible for. Bool flags never
// consume the following argument; value flags consume it unless it looks
// like another flag.
type Owned struct {
	Name string
	Bool bool
}

// Value is shorthand for an owned flag that takes a value.
func Value(name string) Owned { return Owned{Name: name} }

// Bool is shorthand for an owned boolean flag.
func Bool(name string) Owned { return Owned{Name: name, Bool: true} }

// FilterArgs returns the subset of args that belongs to the owned flags, in
// their original order. Both "-f value" and "-f=value" forms are kept; a
// single or double leading dash is accepted for every name.
func FilterArgs(args []string, owned ...Owned) []string {
	byName := make(map[string]Owned, len(owned)*2)
	for _, o := range owned {
		name := strings.TrimLeft(o.Name, "-")
		byName["-"+name] = o
		byName["--"+name] = o
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := byName[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		o, ok := byName[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if !o.Bool && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Value("c"), Value("config")))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
