package hpack

import (
	"math"

	"go.uber.org/zap"
)

// An IndexingPolicy decides whether a representation that is not found in
// the header table is inserted into the dynamic table.
type IndexingPolicy func(name, value string) bool

// A HeaderListener is called once for every representation the encoder
// emits, in emission order.
type HeaderListener func(name, value string)

// DefaultIndexingPolicy indexes every header with a non-empty name, except
// pseudo headers other than :authority.
func DefaultIndexingPolicy(name, _ string) bool {
	if len(name) == 0 {
		return false
	}
	if name[0] == pseudoHeaderPrefix {
		return name == ":authority"
	}
	return true
}

// An Encoder performs HPACK encoding. It owns the dynamic table of one
// direction of a connection and must not be used concurrently.
type Encoder struct {
	table   *HeaderTable
	huffman *HuffmanTable
	out     OutputStream

	shouldIndex       IndexingPolicy
	listener          HeaderListener
	enableCompression bool

	shouldEmitTableSize         bool
	minTableSizeSettingReceived uint32

	logger *zap.Logger
}

// NewEncoder returns a new Encoder with a dynamic table of
// DefaultHeaderTableSize bytes.
func NewEncoder() *Encoder {
	return &Encoder{
		table:                       NewHeaderTable(),
		huffman:                     SharedHuffmanTable(),
		shouldIndex:                 DefaultIndexingPolicy,
		listener:                    func(string, string) {},
		enableCompression:           true,
		minTableSizeSettingReceived: math.MaxUint32,
		logger:                      zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output. A nil logger disables logging.
func (e *Encoder) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger = l
}

// SetHeaderListener sets a callback that observes every emitted representation.
func (e *Encoder) SetHeaderListener(l HeaderListener) {
	if l == nil {
		l = func(string, string) {}
	}
	e.listener = l
}

// SetIndexingPolicy replaces DefaultIndexingPolicy.
func (e *Encoder) SetIndexingPolicy(p IndexingPolicy) {
	if p == nil {
		p = DefaultIndexingPolicy
	}
	e.shouldIndex = p
}

// DisableCompression makes the encoder emit every representation as a
// literal without indexing, using neither the header table nor Huffman
// coding.
func (e *Encoder) DisableCompression() {
	e.enableCompression = false
	e.logger.Debug("header compression disabled")
}

// HeaderTable returns the encoder's header table.
func (e *Encoder) HeaderTable() *HeaderTable { return e.table }

// CurrentHeaderTableSizeSetting is the current size bound of the dynamic table.
func (e *Encoder) CurrentHeaderTableSizeSetting() uint32 {
	return e.table.SettingsSizeBound()
}

// ApplyHeaderTableSizeSetting applies a SETTINGS_HEADER_TABLE_SIZE value
// received from the peer. The change is signaled at the start of the
// next header block. If the size shrank in between, the smallest value is
// signaled first, so that the peer evicts the same entries we did.
func (e *Encoder) ApplyHeaderTableSizeSetting(size uint32) {
	if size == e.table.SettingsSizeBound() {
		return
	}
	if size < e.table.SettingsSizeBound() {
		e.minTableSizeSettingReceived = min(size, e.minTableSizeSettingReceived)
	}
	e.table.SetSettingsHeaderTableSize(size)
	e.shouldEmitTableSize = true
	e.logger.Debug("applied header table size setting",
		zap.Uint32("size", size),
		zap.Uint32("dynamicTableSize", e.table.Size()),
	)
}

// EncodeHeaderSet encodes a header set into a single header block.
// Pseudo headers are emitted before regular headers.
func (e *Encoder) EncodeHeaderSet(headers []HeaderField) []byte {
	return e.EncodeHeaderSetProgressive(headers).Next(math.MaxInt)
}

// EncodeHeaderBlock encodes the fields of b into a single header block.
func (e *Encoder) EncodeHeaderBlock(b *HeaderBlock) []byte {
	return e.EncodeHeaderSet(b.Fields())
}

// EncodeHeaderSetProgressive returns a ProgressiveEncoder for a header set.
func (e *Encoder) EncodeHeaderSetProgressive(headers []HeaderField) *ProgressiveEncoder {
	return e.newProgressiveEncoder(splitHeaderSet(headers))
}

// EncodeRepresentations returns a ProgressiveEncoder for a list of
// representations. Representations are emitted in order, except that
// pseudo headers are moved to the front. Values are decomposed at NUL
// bytes, and cookies are crumbled.
func (e *Encoder) EncodeRepresentations(reps []HeaderField) *ProgressiveEncoder {
	return e.newProgressiveEncoder(splitHeaderSet(reps))
}

func (e *Encoder) maybeEmitTableSize() {
	if !e.shouldEmitTableSize {
		return
	}
	current := e.table.SettingsSizeBound()
	if e.minTableSizeSettingReceived < current {
		e.emitTableSizeUpdate(e.minTableSizeSettingReceived)
	}
	e.emitTableSizeUpdate(current)
	e.minTableSizeSettingReceived = math.MaxUint32
	e.shouldEmitTableSize = false
}

func (e *Encoder) encodeRepresentation(hf HeaderField) {
	e.listener(hf.Name, hf.Value)
	if !e.enableCompression {
		e.emitNonIndexedLiteral(hf)
		return
	}
	if entry := e.table.GetByNameAndValue(hf.Name, hf.Value); entry != nil {
		e.emitIndex(e.table.IndexOf(entry))
		return
	}
	if e.shouldIndex(hf.Name, hf.Value) {
		e.emitIndexedLiteral(hf)
		return
	}
	e.emitNonIndexedLiteral(hf)
}

// Indexed Header Field, RFC 7541 Section 6.1: 1xxxxxxx
func (e *Encoder) emitIndex(index int) {
	e.out.AppendPrefix(prefixIndexed)
	e.out.AppendUint32(uint32(index))
}

// Literal Header Field with Incremental Indexing, RFC 7541 Section 6.2.1: 01xxxxxx
func (e *Encoder) emitIndexedLiteral(hf HeaderField) {
	e.out.AppendPrefix(prefixLiteralIncremental)
	e.emitLiteral(hf)
	e.table.TryAddEntry(hf.Name, hf.Value)
}

// Literal Header Field without Indexing, new name, RFC 7541 Section 6.2.2: 00000000
func (e *Encoder) emitNonIndexedLiteral(hf HeaderField) {
	e.out.AppendPrefix(prefixLiteralNoIndex)
	e.out.AppendUint32(0)
	e.emitString(hf.Name)
	e.emitString(hf.Value)
}

// emitLiteral references the name by index if the table has it.
func (e *Encoder) emitLiteral(hf HeaderField) {
	if entry := e.table.GetByName(hf.Name); entry != nil {
		e.out.AppendUint32(uint32(e.table.IndexOf(entry)))
	} else {
		e.out.AppendUint32(0)
		e.emitString(hf.Name)
	}
	e.emitString(hf.Value)
}

// emitString writes a string literal, RFC 7541 Section 5.2. Huffman
// coding is used only if it is strictly shorter.
func (e *Encoder) emitString(s string) {
	encodedSize := len(s)
	if e.enableCompression {
		encodedSize = e.huffman.EncodedSize(s)
	}
	if encodedSize < len(s) {
		e.out.AppendPrefix(prefixStringHuffman)
		e.out.AppendUint32(stringLength(encodedSize))
		e.huffman.EncodeString(s, &e.out)
		return
	}
	e.out.AppendPrefix(prefixStringIdentity)
	e.out.AppendUint32(stringLength(len(s)))
	e.out.appendString(s)
}

// Dynamic Table Size Update, RFC 7541 Section 6.3: 001xxxxx
func (e *Encoder) emitTableSizeUpdate(size uint32) {
	e.logger.Debug("emitting dynamic table size update", zap.Uint32("size", size))
	e.out.AppendPrefix(prefixTableSizeUpdate)
	e.out.AppendUint32(size)
}
