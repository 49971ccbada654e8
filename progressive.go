package hpack

// A ProgressiveEncoder encodes a header block in chunks of bounded size.
// Chunks must be requested sequentially, and only one ProgressiveEncoder
// of an Encoder may be in use at a time: all of them share the encoder's
// dynamic table and output buffer.
type ProgressiveEncoder struct {
	encoder *Encoder
	reps    []HeaderField
	hasNext bool
}

func (e *Encoder) newProgressiveEncoder(reps []HeaderField) *ProgressiveEncoder {
	e.maybeEmitTableSize()
	return &ProgressiveEncoder{
		encoder: e,
		reps:    reps,
		hasNext: true,
	}
}

// HasNext reports whether there is more output.
func (p *ProgressiveEncoder) HasNext() bool { return p.hasNext }

// Next returns up to maxBytes bytes of the encoded header block.
// It encodes representations until at least maxBytes bytes are buffered.
// Bytes beyond the limit are kept for the next call.
func (p *ProgressiveEncoder) Next(maxBytes int) []byte {
	if !p.hasNext {
		panic("hpack: Next called on a finished ProgressiveEncoder")
	}
	e := p.encoder
	for len(p.reps) > 0 && e.out.Len() <= maxBytes {
		e.encodeRepresentation(p.reps[0])
		p.reps = p.reps[1:]
	}
	p.hasNext = e.out.Len() > maxBytes || len(p.reps) > 0
	return e.out.BoundedTakeBytes(maxBytes)
}
