package hpack

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	xhpack "golang.org/x/net/http2/hpack"
)

// decodeBlock decodes a header block with the reference decoder.
func decodeBlock(d *xhpack.Decoder, block []byte) []HeaderField {
	decoded, err := d.DecodeFull(block)
	ExpectWithOffset(1, err).ToNot(HaveOccurred())
	fields := make([]HeaderField, 0, len(decoded))
	for _, hf := range decoded {
		fields = append(fields, HeaderField{Name: hf.Name, Value: hf.Value})
	}
	return fields
}

var _ = Describe("Encoder", func() {
	var (
		encoder *Encoder
		decoder *xhpack.Decoder
	)

	BeforeEach(func() {
		encoder = NewEncoder()
		decoder = xhpack.NewDecoder(DefaultHeaderTableSize, nil)
	})

	encodeHex := func(headers ...HeaderField) string {
		return hex.EncodeToString(encoder.EncodeHeaderSet(headers))
	}

	It("uses the static table", func() {
		Expect(encodeHex(HeaderField{Name: ":method", Value: "GET"})).To(Equal("82"))
		Expect(encoder.HeaderTable().DynamicLen()).To(BeZero())
	})

	It("encodes the request examples of RFC 7541 Appendix C.4", func() {
		Expect(encodeHex(
			HeaderField{Name: ":method", Value: "GET"},
			HeaderField{Name: ":scheme", Value: "http"},
			HeaderField{Name: ":path", Value: "/"},
			HeaderField{Name: ":authority", Value: "www.example.com"},
		)).To(Equal("828684418cf1e3c2e5f23a6ba0ab90f4ff"))
		Expect(encoder.HeaderTable().Size()).To(BeEquivalentTo(57))

		Expect(encodeHex(
			HeaderField{Name: ":method", Value: "GET"},
			HeaderField{Name: ":scheme", Value: "http"},
			HeaderField{Name: ":path", Value: "/"},
			HeaderField{Name: ":authority", Value: "www.example.com"},
			HeaderField{Name: "cache-control", Value: "no-cache"},
		)).To(Equal("828684be5886a8eb10649cbf"))
		Expect(encoder.HeaderTable().Size()).To(BeEquivalentTo(110))

		Expect(encodeHex(
			HeaderField{Name: ":method", Value: "GET"},
			HeaderField{Name: ":scheme", Value: "https"},
			HeaderField{Name: ":path", Value: "/index.html"},
			HeaderField{Name: ":authority", Value: "www.example.com"},
			HeaderField{Name: "custom-key", Value: "custom-value"},
		)).To(Equal("828785bf408825a849e95ba97d7f8925a849e95bb8e8b4bf"))
		Expect(encoder.HeaderTable().Size()).To(BeEquivalentTo(164))
		Expect(encoder.HeaderTable().DynamicEntries()).To(Equal([]HeaderField{
			{Name: "custom-key", Value: "custom-value"},
			{Name: "cache-control", Value: "no-cache"},
			{Name: ":authority", Value: "www.example.com"},
		}))
	})

	It("encodes a request end to end", func() {
		headers := []HeaderField{
			{Name: ":path", Value: "/home"},
			{Name: "cookie", Value: "val1; val2;val3"},
			{Name: "accept", Value: "text/html, text/plain,application/xml"},
			{Name: ":method", Value: "GET"},
		}
		block := encoder.EncodeHeaderSet(headers)
		Expect(decodeBlock(decoder, block)).To(Equal([]HeaderField{
			{Name: ":path", Value: "/home"},
			{Name: ":method", Value: "GET"},
			{Name: "cookie", Value: "val1"},
			{Name: "cookie", Value: "val2"},
			{Name: "cookie", Value: "val3"},
			{Name: "accept", Value: "text/html, text/plain,application/xml"},
		}))
		// :path is a literal without indexing with a literal name
		Expect(block[0]).To(BeEquivalentTo(0x00))
		// cookie crumbs and accept are indexed
		Expect(encoder.HeaderTable().DynamicEntries()).To(Equal([]HeaderField{
			{Name: "accept", Value: "text/html, text/plain,application/xml"},
			{Name: "cookie", Value: "val3"},
			{Name: "cookie", Value: "val2"},
			{Name: "cookie", Value: "val1"},
		}))
	})

	It("indexes :authority, but no other pseudo headers", func() {
		block := encoder.EncodeHeaderSet([]HeaderField{
			{Name: ":method", Value: "PUT"},
			{Name: ":authority", Value: "example.org"},
			{Name: ":path", Value: "/upload"},
		})
		Expect(decodeBlock(decoder, block)).To(HaveLen(3))
		Expect(encoder.HeaderTable().DynamicEntries()).To(Equal([]HeaderField{
			{Name: ":authority", Value: "example.org"},
		}))
	})

	It("references fields indexed in previous blocks", func() {
		headers := []HeaderField{
			{Name: "x-custom", Value: "some value"},
			{Name: "user-agent", Value: "test"},
		}
		first := encoder.EncodeHeaderSet(headers)
		second := encoder.EncodeHeaderSet(headers)
		Expect(hex.EncodeToString(second)).To(Equal("bfbe"))
		Expect(len(second)).To(BeNumerically("<", len(first)))
		Expect(decodeBlock(decoder, first)).To(Equal(headers))
		Expect(decodeBlock(decoder, second)).To(Equal(headers))
	})

	It("decomposes values at NUL bytes", func() {
		block := encoder.EncodeHeaderSet([]HeaderField{{Name: "accept", Value: "a\x00\x00b"}})
		Expect(decodeBlock(decoder, block)).To(Equal([]HeaderField{
			{Name: "accept", Value: "a"},
			{Name: "accept", Value: ""},
			{Name: "accept", Value: "b"},
		}))
	})

	It("encodes an empty header set", func() {
		Expect(encoder.EncodeHeaderSet(nil)).To(BeEmpty())
	})

	It("encodes header blocks", func() {
		b := NewHeaderBlock()
		b.Set("foo", "bar")
		b.Set(":method", "GET")
		b.AppendValueOrAddHeader("cookie", "a=b")
		b.AppendValueOrAddHeader("cookie", "c=d")
		Expect(decodeBlock(decoder, encoder.EncodeHeaderBlock(b))).To(Equal([]HeaderField{
			{Name: ":method", Value: "GET"},
			{Name: "foo", Value: "bar"},
			{Name: "cookie", Value: "a=b"},
			{Name: "cookie", Value: "c=d"},
		}))
	})

	Context("without compression", func() {
		BeforeEach(func() {
			encoder.DisableCompression()
		})

		It("emits literals without indexing", func() {
			Expect(encodeHex(HeaderField{Name: ":method", Value: "GET"})).To(Equal(
				"00" + "07" + hex.EncodeToString([]byte(":method")) + "03" + hex.EncodeToString([]byte("GET")),
			))
		})

		It("doesn't use the dynamic table or Huffman coding", func() {
			headers := []HeaderField{
				{Name: ":authority", Value: "www.example.com"},
				{Name: "custom-key", Value: "custom-value"},
				{Name: "cookie", Value: "a=b; c=d"},
			}
			for range 2 {
				block := encoder.EncodeHeaderSet(headers)
				Expect(decodeBlock(decoder, block)).To(Equal([]HeaderField{
					{Name: ":authority", Value: "www.example.com"},
					{Name: "custom-key", Value: "custom-value"},
					{Name: "cookie", Value: "a=b"},
					{Name: "cookie", Value: "c=d"},
				}))
				Expect(encoder.HeaderTable().DynamicLen()).To(BeZero())
				for _, hf := range headers {
					Expect(string(block)).To(ContainSubstring(hf.Name))
				}
			}
		})
	})

	Context("indexing policy", func() {
		It("consults the policy for fields not in the table", func() {
			var asked []string
			encoder.SetIndexingPolicy(func(name, value string) bool {
				asked = append(asked, name+": "+value)
				return name == "x-index-me"
			})
			block := encoder.EncodeHeaderSet([]HeaderField{
				{Name: ":method", Value: "GET"},
				{Name: "x-index-me", Value: "yes"},
				{Name: "x-other", Value: "no"},
			})
			Expect(asked).To(Equal([]string{"x-index-me: yes", "x-other: no"}))
			Expect(encoder.HeaderTable().DynamicEntries()).To(Equal([]HeaderField{
				{Name: "x-index-me", Value: "yes"},
			}))
			Expect(decodeBlock(decoder, block)).To(HaveLen(3))
		})

		It("restores the default policy", func() {
			encoder.SetIndexingPolicy(func(string, string) bool { return false })
			encoder.EncodeHeaderSet([]HeaderField{{Name: "foo", Value: "bar"}})
			Expect(encoder.HeaderTable().DynamicLen()).To(BeZero())
			encoder.SetIndexingPolicy(nil)
			encoder.EncodeHeaderSet([]HeaderField{{Name: "foo", Value: "bar"}})
			Expect(encoder.HeaderTable().DynamicLen()).To(Equal(1))
		})

		It("has a default policy", func() {
			Expect(DefaultIndexingPolicy("", "foo")).To(BeFalse())
			Expect(DefaultIndexingPolicy(":authority", "example.com")).To(BeTrue())
			Expect(DefaultIndexingPolicy(":path", "/")).To(BeFalse())
			Expect(DefaultIndexingPolicy(":status", "200")).To(BeFalse())
			Expect(DefaultIndexingPolicy("foo", "")).To(BeTrue())
		})
	})

	It("notifies the listener in emission order", func() {
		var emitted []HeaderField
		encoder.SetHeaderListener(func(name, value string) {
			emitted = append(emitted, HeaderField{Name: name, Value: value})
		})
		encoder.EncodeHeaderSet([]HeaderField{
			{Name: "cookie", Value: "a=b; c=d"},
			{Name: ":method", Value: "GET"},
			{Name: "foo", Value: "x\x00y"},
		})
		Expect(emitted).To(Equal([]HeaderField{
			{Name: ":method", Value: "GET"},
			{Name: "cookie", Value: "a=b"},
			{Name: "cookie", Value: "c=d"},
			{Name: "foo", Value: "x"},
			{Name: "foo", Value: "y"},
		}))

		encoder.SetHeaderListener(nil)
		Expect(func() { encoder.EncodeHeaderSet([]HeaderField{{Name: "foo", Value: "bar"}}) }).ToNot(Panic())
	})

	Context("string literals", func() {
		It("uses Huffman coding only if it is shorter", func() {
			table := SharedHuffmanTable()
			inputs := []string{"", "a", "aa", "www.example.com", "\xff\xfe", "}}}}", "no-cache"}
			for range 200 {
				b := make([]byte, rand.IntN(20))
				for i := range b {
					b[i] = byte(rand.IntN(256))
				}
				inputs = append(inputs, string(b))
			}
			for _, s := range inputs {
				encoder.emitString(s)
				b := encoder.out.TakeBytes()
				huffman := table.EncodedSize(s) < len(s)
				Expect(b[0]&0x80 != 0).To(Equal(huffman), fmt.Sprintf("encoding %q", s))
				if huffman {
					Expect(b).To(HaveLen(1 + table.EncodedSize(s)))
				} else {
					Expect(string(b[1:])).To(Equal(s))
				}
			}
		})

		It("uses long length prefixes", func() {
			encoder.DisableCompression()
			value := strings.Repeat("x", 1000)
			block := encoder.EncodeHeaderSet([]HeaderField{{Name: "foo", Value: value}})
			Expect(decodeBlock(decoder, block)).To(Equal([]HeaderField{{Name: "foo", Value: value}}))
		})
	})

	Context("header table size updates", func() {
		It("doesn't emit an update if the size didn't change", func() {
			encoder.ApplyHeaderTableSizeSetting(DefaultHeaderTableSize)
			Expect(encodeHex()).To(BeEmpty())
		})

		It("emits an increase", func() {
			encoder.ApplyHeaderTableSizeSetting(8192)
			Expect(encoder.CurrentHeaderTableSizeSetting()).To(BeEquivalentTo(8192))
			Expect(encodeHex()).To(Equal("3fe13f"))
			Expect(encodeHex()).To(BeEmpty())
		})

		It("emits a decrease", func() {
			encoder.ApplyHeaderTableSizeSetting(1024)
			Expect(encodeHex()).To(Equal("3fe107"))
		})

		It("emits the minimum and the final size", func() {
			encoder.ApplyHeaderTableSizeSetting(1024)
			encoder.ApplyHeaderTableSizeSetting(512)
			encoder.ApplyHeaderTableSizeSetting(2048)
			Expect(encoder.CurrentHeaderTableSizeSetting()).To(BeEquivalentTo(2048))
			Expect(encodeHex()).To(Equal("3fe103" + "3fe10f"))
			// the minimum is reset after it was emitted
			encoder.ApplyHeaderTableSizeSetting(4096)
			Expect(encodeHex()).To(Equal("3fe11f"))
		})

		It("emits a single update if the final size is the minimum", func() {
			encoder.ApplyHeaderTableSizeSetting(2048)
			encoder.ApplyHeaderTableSizeSetting(1024)
			Expect(encodeHex()).To(Equal("3fe107"))
		})

		It("emits the update before the first representation", func() {
			encoder.ApplyHeaderTableSizeSetting(0)
			block := encoder.EncodeHeaderSet([]HeaderField{{Name: "foo", Value: "bar"}})
			Expect(block[0]).To(BeEquivalentTo(0x20))
			Expect(decodeBlock(decoder, block)).To(Equal([]HeaderField{{Name: "foo", Value: "bar"}}))
			Expect(encoder.HeaderTable().DynamicLen()).To(BeZero())
		})

		It("evicts entries when shrinking and growing between blocks", func() {
			headers := []HeaderField{
				{Name: "aaaa", Value: strings.Repeat("a", 100)},
				{Name: "bbbb", Value: strings.Repeat("b", 100)},
				{Name: "cccc", Value: strings.Repeat("c", 100)},
			}
			Expect(decodeBlock(decoder, encoder.EncodeHeaderSet(headers))).To(Equal(headers))
			encoder.ApplyHeaderTableSizeSetting(150)
			encoder.ApplyHeaderTableSizeSetting(400)
			Expect(encoder.HeaderTable().DynamicEntries()).To(Equal(headers[2:]))
			// The x/net decoder rejects a second size update while its table is
			// not empty, so the updates are checked on the wire.
			block := encoder.EncodeHeaderSet(headers)
			Expect(hex.EncodeToString(block[:5])).To(Equal("3f77" + "3ff102"))
			Expect(encoder.HeaderTable().Size()).To(BeNumerically("<=", 400))
		})

		It("keeps the peer's table in sync when the minimum empties it", func() {
			headers := []HeaderField{
				{Name: "aaaa", Value: strings.Repeat("a", 100)},
				{Name: "bbbb", Value: strings.Repeat("b", 100)},
				{Name: "cccc", Value: strings.Repeat("c", 100)},
			}
			Expect(decodeBlock(decoder, encoder.EncodeHeaderSet(headers))).To(Equal(headers))
			encoder.ApplyHeaderTableSizeSetting(0)
			encoder.ApplyHeaderTableSizeSetting(400)
			Expect(encoder.HeaderTable().DynamicEntries()).To(BeEmpty())
			block := encoder.EncodeHeaderSet(headers)
			Expect(hex.EncodeToString(block[:4])).To(Equal("20" + "3ff102"))
			Expect(decodeBlock(decoder, block)).To(Equal(headers))
			Expect(decodeBlock(decoder, encoder.EncodeHeaderSet(headers[1:]))).To(Equal(headers[1:]))
		})

		It("logs size updates", func() {
			core, logs := observer.New(zap.DebugLevel)
			encoder.SetLogger(zap.New(core))
			encoder.ApplyHeaderTableSizeSetting(1024)
			encoder.EncodeHeaderSet(nil)
			Expect(logs.FilterMessage("emitting dynamic table size update").Len()).To(Equal(1))
			Expect(logs.FilterField(zap.Uint32("size", 1024)).Len()).To(Equal(2))
		})
	})

	It("round trips random header sets", func() {
		names := []string{":authority", ":path", "cookie", "accept", "x-custom", "user-agent", "content-length"}
		for range 100 {
			if rand.IntN(10) == 0 {
				size := uint32(rand.IntN(DefaultHeaderTableSize + 1))
				encoder.ApplyHeaderTableSizeSetting(size)
			}
			var headers, expected []HeaderField
			for range rand.IntN(10) {
				hf := HeaderField{
					Name:  names[rand.IntN(len(names))],
					Value: fmt.Sprintf("value-%d", rand.IntN(20)),
				}
				headers = append(headers, hf)
			}
			expected = splitHeaderSet(headers)
			decoded := decodeBlock(decoder, encoder.EncodeHeaderSet(headers))
			if len(expected) == 0 {
				Expect(decoded).To(BeEmpty())
			} else {
				Expect(decoded).To(Equal(expected))
			}
			Expect(encoder.HeaderTable().Size()).To(BeNumerically("<=", encoder.CurrentHeaderTableSizeSetting()))
		}
	})
})
