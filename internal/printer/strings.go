package printer

import (
	"strconv"
	"strings"
)

// quoteString renders value as a JS string literal, choosing whichever of
// '"'/'\'' needs fewer escapes (§4.10 "chooses the quote style minimizing
// escapes"), unless Options.PreserveHexUnicodeEscapes is set and raw is
// available, in which case the literal's original spelling (quote choice,
// hex/unicode escape formatting included) passes through untouched.
func (p *Printer) quoteString(value, raw string) string {
	if p.opts.PreserveHexUnicodeEscapes && raw != "" {
		return raw
	}
	quote := byte('"')
	if p.preferredQuoteChar() == '\'' {
		quote = '\''
	}
	if strings.Count(value, string(quote)) > strings.Count(value, string(oppositeQuote(quote))) {
		quote = oppositeQuote(quote)
	}
	return quote1(value, quote)
}

func (p *Printer) preferredQuoteChar() byte {
	if p.opts.Quote == QuoteSingle {
		return '\''
	}
	return '"'
}

func oppositeQuote(q byte) byte {
	if q == '"' {
		return '\''
	}
	return '"'
}

// quote1 escapes value for inclusion inside a quote-delimited literal,
// escaping only the characters that would otherwise break the literal:
// the delimiter itself, backslash, and the handful of control characters
// with a short escape form. Everything else (including non-ASCII text)
// passes through verbatim, since JS source is UTF-8 and this core has no
// reason to force an ASCII-only rendering.
func quote1(value string, quote byte) string {
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range value {
		switch r {
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// strconv renders e.g. 1e+21 / 1e-07; JS source uses "1e21"/"1e-7"
	// with no leading zero and no "+" on a positive exponent.
	if i := strings.IndexAny(s, "eE"); i != -1 {
		mantissa, exp := s[:i], s[i+1:]
		exp = strings.TrimPrefix(exp, "+")
		for len(exp) > 1 && (exp[0] == '0' || (exp[0] == '-' && exp[1] == '0')) {
			if exp[0] == '0' {
				exp = exp[1:]
			} else {
				exp = "-" + strings.TrimPrefix(exp[1:], "0")
			}
		}
		return mantissa + "e" + exp
	}
	return s
}
