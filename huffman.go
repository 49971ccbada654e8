package hpack

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// maxHuffmanSymbols is the size of the HPACK alphabet: 256 octets plus EOS.
const maxHuffmanSymbols = 257

var (
	// ErrNoPaddingSymbol is returned by Initialize when no code is at least
	// 8 bits long, so a partial final byte could not be padded.
	ErrNoPaddingSymbol = errors.New("hpack: huffman code has no symbol of 8 or more bits")
	// ErrSymbolCount is returned by Initialize for an empty or oversized alphabet.
	ErrSymbolCount = errors.New("hpack: invalid number of huffman symbols")
)

// An InvalidSymbolError is returned when a symbol breaks the canonical
// Huffman code.
type InvalidSymbolError struct {
	SymbolID uint16
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("hpack: invalid huffman symbol %d", e.SymbolID)
}

// A HuffmanSymbol is one entry of a canonical Huffman code.
// Code is left-justified: the first bit of the code is bit 31.
type HuffmanSymbol struct {
	Code   uint32
	Length uint8
	ID     uint16
}

// A HuffmanTable encodes strings using a canonical Huffman code.
// It is safe for concurrent use once initialized.
type HuffmanTable struct {
	codeByID   []uint32
	lengthByID []uint8
	padBits    uint8
}

// Initialize validates symbols as a canonical Huffman code and builds the
// lookup tables. Symbols must be ordered by ID starting at 0.
// If validation fails the table stays uninitialized.
func (t *HuffmanTable) Initialize(symbols []HuffmanSymbol) error {
	if t.IsInitialized() {
		panic("hpack: huffman table initialized twice")
	}
	if len(symbols) == 0 || len(symbols) > maxHuffmanSymbols {
		return ErrSymbolCount
	}
	for i, sym := range symbols {
		if int(sym.ID) != i {
			return &InvalidSymbolError{SymbolID: uint16(i)}
		}
		if sym.Length == 0 || sym.Length > 32 {
			return &InvalidSymbolError{SymbolID: sym.ID}
		}
	}

	// Canonical codes are assigned in order of length, ties broken by ID.
	sorted := make([]HuffmanSymbol, len(symbols))
	copy(sorted, symbols)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length < sorted[j].Length
	})

	if sorted[0].Code != 0 {
		return &InvalidSymbolError{SymbolID: sorted[0].ID}
	}
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		code := prev.Code + uint32(1)<<(32-prev.Length)
		if code != sorted[i].Code {
			return &InvalidSymbolError{SymbolID: sorted[i].ID}
		}
		if code < prev.Code {
			// overflow: the lengths don't describe a prefix code
			return &InvalidSymbolError{SymbolID: sorted[i].ID}
		}
	}
	last := sorted[len(sorted)-1]
	if last.Length < 8 {
		return ErrNoPaddingSymbol
	}

	codeByID := make([]uint32, len(symbols))
	lengthByID := make([]uint8, len(symbols))
	for _, sym := range symbols {
		codeByID[sym.ID] = sym.Code
		lengthByID[sym.ID] = sym.Length
	}
	t.codeByID = codeByID
	t.lengthByID = lengthByID
	t.padBits = uint8(last.Code >> 24)
	return nil
}

// IsInitialized reports whether Initialize succeeded.
func (t *HuffmanTable) IsInitialized() bool {
	return len(t.codeByID) > 0
}

// EncodeString appends the Huffman encoding of in to out, padding a
// partial final byte with the most significant bits of the longest code.
func (t *HuffmanTable) EncodeString(in string, out *OutputStream) {
	var bitRemnant uint
	for i := 0; i < len(in); i++ {
		id := int(in[i])
		if id >= len(t.codeByID) {
			panic(fmt.Sprintf("hpack: no huffman code for symbol %d", id))
		}
		length := t.lengthByID[id]
		code := t.codeByID[id] >> (32 - length)
		bitRemnant = (bitRemnant + uint(length)) % 8

		if length > 24 {
			out.AppendBits(uint8(code>>24), length-24)
			length = 24
		}
		if length > 16 {
			out.AppendBits(uint8(code>>16), length-16)
			length = 16
		}
		if length > 8 {
			out.AppendBits(uint8(code>>8), length-8)
			length = 8
		}
		out.AppendBits(uint8(code), length)
	}
	if bitRemnant != 0 {
		out.AppendBits(t.padBits>>bitRemnant, uint8(8-bitRemnant))
	}
}

// EncodedSize returns the number of bytes EncodeString produces for in.
func (t *HuffmanTable) EncodedSize(in string) int {
	var bits int
	for i := 0; i < len(in); i++ {
		bits += int(t.lengthByID[in[i]])
	}
	return (bits + 7) / 8
}

// SharedHuffmanTable returns the process-wide table for the HPACK Huffman
// code of RFC 7541 Appendix B. It is built on first use.
func SharedHuffmanTable() *HuffmanTable {
	return sharedHuffmanTable()
}

var sharedHuffmanTable = sync.OnceValue(func() *HuffmanTable {
	t := &HuffmanTable{}
	if err := t.Initialize(hpackHuffmanCode[:]); err != nil {
		panic(fmt.Sprintf("hpack: invalid built-in huffman code: %v", err))
	}
	return t
})
