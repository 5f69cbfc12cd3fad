package dot

import "strings"

// quote returns s as a DOT quoted string. Double quotes are escaped, and runs of
// backslashes are doubled where they would otherwise escape a quote. Every other
// byte is written as is, so UTF-8 labels and DOT escapes such as \n pass through.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	pending := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			pending++
			continue
		case '"':
			sb.WriteString(strings.Repeat(`\`, 2*pending+1))
			sb.WriteByte('"')
		default:
			sb.WriteString(strings.Repeat(`\`, pending))
			sb.WriteByte(c)
		}
		pending = 0
	}
	sb.WriteString(strings.Repeat(`\`, 2*pending))
	sb.WriteByte('"')
	return sb.String()
}

// unquote reverses [quote]. A value that is not double-quoted is returned as is.
func unquote(q string) string {
	if len(q) < 2 || q[0] != '"' || q[len(q)-1] != '"' {
		return q
	}
	s := q[1 : len(q)-1]

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == '\\' {
			j++
		}
		run := j - i
		switch {
		case j < len(s) && s[j] == '"':
			sb.WriteString(strings.Repeat(`\`, run/2))
			sb.WriteByte('"')
			j++
		case j == len(s):
			sb.WriteString(strings.Repeat(`\`, run/2))
		default:
			sb.WriteString(strings.Repeat(`\`, run))
		}
		i = j
	}
	return sb.String()
}
