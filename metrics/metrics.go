// Package metrics exports Prometheus metrics about the header fields an
// HPACK encoder emits.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
)

const (
	Namespace = "hpack"
	Subsystem = "encoder"

	KindLabel = "kind"

	KindPseudo  = "pseudo"
	KindCookie  = "cookie"
	KindRegular = "regular"
)

// SizeBuckets returns the histogram buckets for representation sizes.
// Each returned slice is new and may be modified.
func SizeBuckets() []float64 {
	return prometheus.ExponentialBuckets(32, 2, 10)
}

// A Recorder counts emitted representations. Its Observe method has the
// signature of hpack.HeaderListener.
type Recorder struct {
	representations *prometheus.CounterVec
	sizes           *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		representations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "representations_total",
				Help:      "Number of header representations emitted, by kind.",
			},
			[]string{KindLabel},
		),
		sizes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "representation_size_bytes",
				Help:      "Size of emitted header representations as accounted in the dynamic table (name + value + 32).",
				Buckets:   SizeBuckets(),
			},
			[]string{KindLabel},
		),
	}
	reg.MustRegister(r.representations, r.sizes)
	// initialize all label values so that they show up before the first observation
	lo.ForEach([]string{KindPseudo, KindCookie, KindRegular}, func(kind string, _ int) {
		r.representations.WithLabelValues(kind)
	})
	return r
}

// Observe records one emitted representation.
func (r *Recorder) Observe(name, value string) {
	kind := Kind(name)
	r.representations.WithLabelValues(kind).Inc()
	r.sizes.WithLabelValues(kind).Observe(float64(len(name) + len(value) + 32))
}

// Kind classifies a header name.
func Kind(name string) string {
	switch {
	case len(name) > 0 && name[0] == ':':
		return KindPseudo
	case name == "cookie":
		return KindCookie
	default:
		return KindRegular
	}
}
