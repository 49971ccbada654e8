package hpack

import (
	"fmt"
	"math"
)

// A Prefix is a fixed-width bit pattern that starts a representation or a
// string literal, e.g. 01 for a literal with incremental indexing.
type Prefix struct {
	Bits uint8
	Size uint8
}

// Opcode and string prefixes, RFC 7541 Sections 5.2 and 6.
var (
	prefixStringIdentity     = Prefix{Bits: 0x0, Size: 1}
	prefixStringHuffman      = Prefix{Bits: 0x1, Size: 1}
	prefixIndexed            = Prefix{Bits: 0x1, Size: 1}
	prefixLiteralIncremental = Prefix{Bits: 0x1, Size: 2}
	prefixLiteralNoIndex     = Prefix{Bits: 0x0, Size: 4}
	prefixTableSizeUpdate    = Prefix{Bits: 0x1, Size: 3}
)

// An OutputStream accumulates bits, most significant first, into a byte
// buffer. The last byte may be partially filled.
type OutputStream struct {
	buf []byte
	// number of bits used in the last byte of buf, 0 if byte aligned
	bitOffset uint8
}

// AppendBits appends the low bitSize bits of bits.
// bitSize must be at most 8, and bits must not have higher bits set.
// Appending zero bits does nothing.
func (s *OutputStream) AppendBits(bits uint8, bitSize uint8) {
	if bitSize > 8 {
		panic(fmt.Sprintf("hpack: invalid bit count %d", bitSize))
	}
	if bitSize < 8 && bits>>bitSize != 0 {
		panic(fmt.Sprintf("hpack: value %#x does not fit into %d bits", bits, bitSize))
	}
	if bitSize == 0 {
		return
	}
	newOffset := s.bitOffset + bitSize
	switch {
	case s.bitOffset == 0:
		s.buf = append(s.buf, bits<<(8-bitSize))
	case newOffset <= 8:
		s.buf[len(s.buf)-1] |= bits << (8 - newOffset)
	default:
		s.buf[len(s.buf)-1] |= bits >> (newOffset - 8)
		s.buf = append(s.buf, bits<<(16-newOffset))
	}
	s.bitOffset = newOffset % 8
}

// AppendPrefix appends an opcode or string prefix.
func (s *OutputStream) AppendPrefix(p Prefix) {
	s.AppendBits(p.Bits, p.Size)
}

// AppendBytes appends b. The stream must be byte aligned.
func (s *OutputStream) AppendBytes(b []byte) {
	s.mustBeAligned()
	s.buf = append(s.buf, b...)
}

func (s *OutputStream) appendString(str string) {
	s.mustBeAligned()
	s.buf = append(s.buf, str...)
}

// AppendUint32 appends v as an integer of RFC 7541 Section 5.1, using the
// remaining bits of the current byte as the N-bit prefix.
// After the call the stream is byte aligned.
func (s *OutputStream) AppendUint32(v uint32) {
	n := 8 - s.bitOffset
	maxFirst := uint8(uint32(1)<<n - 1)
	if v < uint32(maxFirst) {
		s.AppendBits(uint8(v), n)
		return
	}
	s.AppendBits(maxFirst, n)
	v -= uint32(maxFirst)
	for v >= 128 {
		s.buf = append(s.buf, byte(v&0x7f)|0x80)
		v >>= 7
	}
	s.buf = append(s.buf, byte(v))
}

// Len returns the number of bytes buffered, counting a partial last byte.
func (s *OutputStream) Len() int { return len(s.buf) }

// BitOffset returns the number of bits used in the last byte,
// 0 meaning the stream is byte aligned.
func (s *OutputStream) BitOffset() uint8 { return s.bitOffset }

// TakeBytes returns the buffered bytes and resets the stream.
func (s *OutputStream) TakeBytes() []byte {
	s.mustBeAligned()
	b := s.buf
	s.buf = nil
	return b
}

// BoundedTakeBytes returns at most maxSize bytes from the front of the
// buffer. The rest is kept for subsequent calls.
func (s *OutputStream) BoundedTakeBytes(maxSize int) []byte {
	if maxSize < 0 {
		panic(fmt.Sprintf("hpack: negative chunk size %d", maxSize))
	}
	if len(s.buf) <= maxSize {
		return s.TakeBytes()
	}
	s.mustBeAligned()
	b := s.buf[:maxSize:maxSize]
	s.buf = append([]byte(nil), s.buf[maxSize:]...)
	return b
}

// stringLength converts the length of a string literal for a length prefix.
func stringLength(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		panic(fmt.Sprintf("hpack: string of %d bytes is too long", n))
	}
	return uint32(n)
}

func (s *OutputStream) mustBeAligned() {
	if s.bitOffset != 0 {
		panic(fmt.Sprintf("hpack: output stream not byte aligned (bit offset %d)", s.bitOffset))
	}
}
