package hpack

import "strings"

// entryOverhead is the per-entry overhead of RFC 7541 Section 4.1.
const entryOverhead = 32

const pseudoHeaderPrefix = ':'

// A HeaderField is a name-value pair. Both the name and value are
// treated as opaque sequences of octets.
type HeaderField struct {
	Name  string
	Value string
}

// IsPseudo reports whether the header field is an HTTP/2 pseudo header.
// That is, it reports whether it starts with a colon.
// It is not otherwise guaranteed to be a valid pseudo header field,
// though.
func (hf HeaderField) IsPseudo() bool {
	return strings.HasPrefix(hf.Name, string(pseudoHeaderPrefix))
}

// Size is the size of the field when stored in the dynamic table.
func (hf HeaderField) Size() uint32 {
	return entrySize(hf.Name, hf.Value)
}

func entrySize(name, value string) uint32 {
	return stringLength(len(name) + len(value) + entryOverhead)
}
