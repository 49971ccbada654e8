package hpack

import "strings"

const cookieName = "cookie"

// CookieToCrumbs splits a cookie header field into one representation per
// cookie-pair (RFC 7540 Section 8.1.2.5). Leading and trailing spaces and
// tabs of the value are dropped, and a single space following each ';' is
// consumed.
func CookieToCrumbs(cookie HeaderField, out []HeaderField) []HeaderField {
	value := strings.Trim(cookie.Value, " \t")
	for pos := 0; ; {
		end := strings.IndexByte(value[pos:], ';')
		if end < 0 {
			return append(out, HeaderField{Name: cookie.Name, Value: value[pos:]})
		}
		end += pos
		out = append(out, HeaderField{Name: cookie.Name, Value: value[pos:end]})
		pos = end + 1
		if pos != len(value) && value[pos] == ' ' {
			pos++
		}
	}
}

// DecomposeRepresentation splits a value joined with NUL bytes into
// separate representations of the same name. Empty pieces are kept.
func DecomposeRepresentation(hf HeaderField, out []HeaderField) []HeaderField {
	for _, v := range strings.Split(hf.Value, "\x00") {
		out = append(out, HeaderField{Name: hf.Name, Value: v})
	}
	return out
}

// splitHeaderSet turns a header set into representations: pseudo headers
// first, then regular headers. Cookies are crumbled, and all other values
// are decomposed at NUL bytes.
func splitHeaderSet(headers []HeaderField) []HeaderField {
	var pseudo, regular []HeaderField
	for _, hf := range headers {
		switch {
		case hf.IsPseudo():
			pseudo = DecomposeRepresentation(hf, pseudo)
		case hf.Name == cookieName:
			regular = CookieToCrumbs(hf, regular)
		default:
			regular = DecomposeRepresentation(hf, regular)
		}
	}
	return append(pseudo, regular...)
}
