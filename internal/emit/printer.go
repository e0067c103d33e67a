package emit

import (
	"fmt"
	"strings"
)

type printer struct {
	b strings.Builder
}

// line writes one formatted line.
func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
}

// raw writes s verbatim as one line. Catalog text goes through raw or a %s
// verb, never through a format string.
func (p *printer) raw(s string) {
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *printer) blank() {
	p.b.WriteByte('\n')
}

func (p *printer) String() string {
	return p.b.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote renders s as a string literal.
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// quoteOrNil renders an optional string.
func quoteOrNil(s *string) string {
	if s == nil {
		return "nil"
	}
	return quote(*s)
}

// trimHelp drops the leading spaces upstream help text sometimes carries.
func trimHelp(s string) string {
	return strings.TrimLeft(s, " ")
}
