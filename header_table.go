package hpack

// DefaultHeaderTableSize is the initial value of SETTINGS_HEADER_TABLE_SIZE.
const DefaultHeaderTableSize = 4096

// A HeaderEntry is an entry of the static or the dynamic table.
type HeaderEntry struct {
	HeaderField

	// position in insertion order; static entries use 0..staticTableLen-1
	insertion uint64
	static    bool
}

// A HeaderTable combines the static table with a dynamic table bounded by
// the SETTINGS_HEADER_TABLE_SIZE value. Dynamic entries are evicted in
// insertion order.
// It is not safe for concurrent use.
type HeaderTable struct {
	static []HeaderEntry

	// oldest entry first
	dynamic    []*HeaderEntry
	size       uint32
	sizeBound  uint32
	insertions uint64

	// most recently inserted dynamic entry per name and per name-value pair
	dynamicByName  map[string]*HeaderEntry
	dynamicByField map[HeaderField]*HeaderEntry
}

// NewHeaderTable returns a table with the default size bound.
func NewHeaderTable() *HeaderTable {
	t := &HeaderTable{
		static:         make([]HeaderEntry, staticTableLen),
		sizeBound:      DefaultHeaderTableSize,
		insertions:     uint64(staticTableLen),
		dynamicByName:  make(map[string]*HeaderEntry),
		dynamicByField: make(map[HeaderField]*HeaderEntry),
	}
	for i, hf := range staticTableEntries {
		t.static[i] = HeaderEntry{HeaderField: hf, insertion: uint64(i), static: true}
	}
	return t
}

// Size is the sum of the sizes of all dynamic entries.
func (t *HeaderTable) Size() uint32 { return t.size }

// SettingsSizeBound is the current SETTINGS_HEADER_TABLE_SIZE bound.
func (t *HeaderTable) SettingsSizeBound() uint32 { return t.sizeBound }

// DynamicLen is the number of entries in the dynamic table.
func (t *HeaderTable) DynamicLen() int { return len(t.dynamic) }

// DynamicEntries returns the dynamic entries, most recently inserted first.
func (t *HeaderTable) DynamicEntries() []HeaderField {
	fields := make([]HeaderField, 0, len(t.dynamic))
	for i := len(t.dynamic) - 1; i >= 0; i-- {
		fields = append(fields, t.dynamic[i].HeaderField)
	}
	return fields
}

// GetByIndex returns the entry at the 1-based HPACK index,
// or nil if there is none.
func (t *HeaderTable) GetByIndex(index int) *HeaderEntry {
	if index < 1 {
		return nil
	}
	if index <= len(t.static) {
		return &t.static[index-1]
	}
	pos := index - len(t.static)
	if pos > len(t.dynamic) {
		return nil
	}
	return t.dynamic[len(t.dynamic)-pos]
}

// GetByName returns an entry with the given name, preferring the static table.
func (t *HeaderTable) GetByName(name string) *HeaderEntry {
	if i, ok := getStaticIndex().byName[name]; ok {
		return &t.static[i]
	}
	return t.dynamicByName[name]
}

// GetByNameAndValue returns an entry matching both name and value,
// preferring the static table.
func (t *HeaderTable) GetByNameAndValue(name, value string) *HeaderEntry {
	hf := HeaderField{Name: name, Value: value}
	if i, ok := getStaticIndex().byField[hf]; ok {
		return &t.static[i]
	}
	return t.dynamicByField[hf]
}

// IndexOf returns the 1-based HPACK index of an entry of this table.
func (t *HeaderTable) IndexOf(e *HeaderEntry) int {
	if e.static {
		return int(e.insertion) + 1
	}
	// the newest entry has index len(static)+1
	return len(t.static) + 1 + int(t.insertions-e.insertion)
}

// TryAddEntry inserts a name-value pair, evicting the oldest entries until
// it fits. An entry larger than the size bound empties the dynamic table
// and is not stored; nil is returned in that case.
func (t *HeaderTable) TryAddEntry(name, value string) *HeaderEntry {
	size := entrySize(name, value)
	t.evict(t.sizeBound - min(size, t.sizeBound))
	if size > t.sizeBound {
		return nil
	}
	t.insertions++
	e := &HeaderEntry{
		HeaderField: HeaderField{Name: name, Value: value},
		insertion:   t.insertions,
	}
	t.dynamic = append(t.dynamic, e)
	t.size += size
	t.dynamicByName[name] = e
	t.dynamicByField[e.HeaderField] = e
	return e
}

// SetSettingsHeaderTableSize changes the size bound, evicting entries if
// the table no longer fits.
func (t *HeaderTable) SetSettingsHeaderTableSize(bound uint32) {
	t.sizeBound = bound
	t.evict(bound)
}

// evict drops the oldest entries until the table size is at most target.
func (t *HeaderTable) evict(target uint32) {
	n := 0
	for t.size > target && n < len(t.dynamic) {
		e := t.dynamic[n]
		t.size -= e.Size()
		if t.dynamicByName[e.Name] == e {
			delete(t.dynamicByName, e.Name)
		}
		if t.dynamicByField[e.HeaderField] == e {
			delete(t.dynamicByField, e.HeaderField)
		}
		t.dynamic[n] = nil
		n++
	}
	if n > 0 {
		t.dynamic = t.dynamic[n:]
	}
}
