//go:build !windows

package cmdline

import (
	"os"
	"strings"
)

// Raw rebuilds a command line from os.Args, quoting each argument so that
// Split returns it unchanged.
func Raw() string {
	parts := make([]string, len(os.Args))
	for i, a := range os.Args {
		if i == 0 {
			parts[i] = `"` + a + `"`
			continue
		}
		parts[i] = quote(a)
	}
	return strings.Join(parts, " ")
}

func quote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}
