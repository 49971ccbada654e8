package fuzzing

import (
	"fmt"
	"reflect"

	xhpack "golang.org/x/net/http2/hpack"

	"github.com/quic-go/hpack"
)

// representations is the list of representations the encoder emits for fields.
func representations(fields []hpack.HeaderField) []hpack.HeaderField {
	var pseudo, regular []hpack.HeaderField
	for _, hf := range fields {
		switch {
		case hf.IsPseudo():
			pseudo = hpack.DecomposeRepresentation(hf, pseudo)
		case hf.Name == "cookie":
			regular = hpack.CookieToCrumbs(hf, regular)
		default:
			regular = hpack.DecomposeRepresentation(hf, regular)
		}
	}
	return append(pseudo, regular...)
}

func decode(d *xhpack.Decoder, data []byte) ([]hpack.HeaderField, error) {
	decoded, err := d.DecodeFull(data)
	if err != nil {
		return nil, err
	}
	fields := make([]hpack.HeaderField, 0, len(decoded))
	for _, hf := range decoded {
		fields = append(fields, hpack.HeaderField{Name: hf.Name, Value: hf.Value})
	}
	return fields, nil
}

func Fuzz(data []byte) int {
	fields, err := decode(xhpack.NewDecoder(hpack.DefaultHeaderTableSize, nil), data)
	if err != nil || len(fields) == 0 {
		return 0
	}

	encoder := hpack.NewEncoder()
	decoder := xhpack.NewDecoder(hpack.DefaultHeaderTableSize, nil)
	// encode twice, so that the second block refers to the dynamic table
	for range 2 {
		encoded := encoder.EncodeHeaderSet(fields)
		encodedFields, err := decode(decoder, encoded)
		if err != nil {
			fmt.Printf("Fields: %#v\n", fields)
			panic(err)
		}
		if expected := representations(fields); !reflect.DeepEqual(expected, encodedFields) {
			fmt.Printf("%#v vs %#v", expected, encodedFields)
			panic("unequal")
		}
		if encoder.HeaderTable().Size() > encoder.CurrentHeaderTableSizeSetting() {
			panic("dynamic table exceeds its size bound")
		}
	}
	return 1
}
