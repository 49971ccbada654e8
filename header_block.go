package hpack

// A HeaderBlock is a header set that keeps the insertion order of names.
// Each name occurs once; repeated values are joined.
type HeaderBlock struct {
	fields []HeaderField
	index  map[string]int
}

// NewHeaderBlock returns an empty header block.
func NewHeaderBlock() *HeaderBlock {
	return &HeaderBlock{index: make(map[string]int)}
}

// Set sets the value of name, replacing any previous value in place.
func (b *HeaderBlock) Set(name, value string) {
	if i, ok := b.index[name]; ok {
		b.fields[i].Value = value
		return
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, HeaderField{Name: name, Value: value})
}

// AppendValueOrAddHeader adds a value to name. If name is already present
// the values are joined with "; " for cookies and with a NUL byte otherwise,
// so that the encoder emits them as separate representations.
func (b *HeaderBlock) AppendValueOrAddHeader(name, value string) {
	i, ok := b.index[name]
	if !ok {
		b.Set(name, value)
		return
	}
	sep := "\x00"
	if name == cookieName {
		sep = "; "
	}
	b.fields[i].Value += sep + value
}

// Get returns the value of name.
func (b *HeaderBlock) Get(name string) (string, bool) {
	i, ok := b.index[name]
	if !ok {
		return "", false
	}
	return b.fields[i].Value, true
}

// Len is the number of distinct names.
func (b *HeaderBlock) Len() int { return len(b.fields) }

// Fields returns the header fields in insertion order.
// The returned slice must not be modified.
func (b *HeaderBlock) Fields() []HeaderField { return b.fields }
