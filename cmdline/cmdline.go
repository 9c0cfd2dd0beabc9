// Package cmdline turns the raw process command line into the argument
// list handed to the embedded runtime.
package cmdline

import "strings"

// split is replaced on Windows by the OS tokenizer.
var split = Split

// Forward tokenizes line and drops the program path. The result is never
// nil; an empty or program-only line yields an empty slice.
func Forward(line string) []string {
	tokens := split(line)
	if len(tokens) <= 1 {
		return []string{}
	}
	out := make([]string, len(tokens)-1)
	copy(out, tokens[1:])
	return out
}

// Split tokenizes line with the rules shell32's CommandLineToArgvW applies.
//
// The first token is the program path: it runs to the closing quote when it
// starts with one, otherwise to the first space or tab, and backslashes in it
// are literal. Later tokens are separated by unquoted whitespace. A run of 2n
// backslashes before a quote becomes n backslashes and the quote toggles
// quoting; 2n+1 backslashes become n backslashes and a literal quote. Inside
// quotes, a doubled quote is a literal quote and ends the quoted run.
func Split(line string) []string {
	if line == "" {
		return []string{}
	}
	var args []string

	i := 0
	var prog strings.Builder
	if line[0] == '"' {
		i = 1
		for i < len(line) && line[i] != '"' {
			prog.WriteByte(line[i])
			i++
		}
		if i < len(line) {
			i++
		}
	} else {
		for i < len(line) && !isSpace(line[i]) {
			prog.WriteByte(line[i])
			i++
		}
	}
	args = append(args, prog.String())

	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}

		var arg strings.Builder
		quoted := false
		for i < len(line) {
			c := line[i]
			if isSpace(c) && !quoted {
				break
			}
			switch c {
			case '\\':
				n := 0
				for i < len(line) && line[i] == '\\' {
					n++
					i++
				}
				if i < len(line) && line[i] == '"' {
					arg.WriteString(strings.Repeat(`\`, n/2))
					if n%2 == 1 {
						arg.WriteByte('"')
						i++
					}
				} else {
					arg.WriteString(strings.Repeat(`\`, n))
				}
			case '"':
				i++
				if quoted && i < len(line) && line[i] == '"' {
					arg.WriteByte('"')
					i++
					quoted = false
					continue
				}
				quoted = !quoted
			default:
				arg.WriteByte(c)
				i++
			}
		}
		args = append(args, arg.String())
	}
	return args
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
