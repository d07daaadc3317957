package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps a standard flag set so commands can render their flags in
// Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag defaults as an indented "Options:" section.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	out := f.Output()
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(out)

	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + strings.TrimRight(buf.String(), "\n") + "\n"
}

// KeyValues parses "key=value" arguments, keeping argument order.
func KeyValues(args []string) ([][2]string, error) {
	pairs := make([][2]string, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs, nil
}
