package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	xhpack "golang.org/x/net/http2/hpack"
	"gopkg.in/yaml.v3"

	"github.com/quic-go/hpack"
	"github.com/quic-go/hpack/metrics"
)

const (
	OutputHex = "hex"
	OutputRaw = "raw"
)

type GlobalOptions struct {
	Verbose bool
	Output  string
}

type EncodeOptions struct {
	TableSize     uint32
	ChunkSize     int
	NoCompression bool
	Verify        bool
	MetricsFile   string
}

// A fixtureField is one entry of a header block in the input file.
type fixtureField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

var (
	globalOpts = GlobalOptions{}
	encodeOpts = EncodeOptions{}
	rootCmd    = &cobra.Command{
		Use:   "hpackenc [file]",
		Short: "Encode header blocks read from a YAML file with HPACK",
		Long: "hpackenc reads a YAML list of header blocks, each a list of name/value pairs, " +
			"and encodes them in order with a single encoder, so later blocks refer to the " +
			"dynamic table built by earlier ones. Reads from stdin if no file is given.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runEncode,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.Output, "output", "o", OutputHex,
		fmt.Sprintf("Output mode: %v", []string{OutputHex, OutputRaw}))

	rootCmd.Flags().Uint32Var(&encodeOpts.TableSize, "table-size", hpack.DefaultHeaderTableSize, "SETTINGS_HEADER_TABLE_SIZE announced by the peer")
	rootCmd.Flags().IntVar(&encodeOpts.ChunkSize, "chunk-size", 0, "Encode progressively in chunks of at most this many bytes (0 to disable)")
	rootCmd.Flags().BoolVar(&encodeOpts.NoCompression, "no-compression", false, "Emit every field as a literal without indexing or Huffman coding")
	rootCmd.Flags().BoolVar(&encodeOpts.Verify, "verify", false, "Decode the output again and compare")
	rootCmd.Flags().StringVar(&encodeOpts.MetricsFile, "metrics-file", "", "Write encoder metrics in the Prometheus text format to this file")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func readBlocks(args []string, stdin io.Reader) ([][]hpack.HeaderField, error) {
	r := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var fixture [][]fixtureField
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing header blocks: %w", err)
	}
	return lo.Map(fixture, func(block []fixtureField, _ int) []hpack.HeaderField {
		return lo.Map(block, func(f fixtureField, _ int) hpack.HeaderField {
			return hpack.HeaderField{Name: f.Name, Value: f.Value}
		})
	}), nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	if globalOpts.Output != OutputHex && globalOpts.Output != OutputRaw {
		return fmt.Errorf("invalid output mode %q", globalOpts.Output)
	}
	if encodeOpts.ChunkSize < 0 {
		return fmt.Errorf("--chunk-size must not be negative, got %d", encodeOpts.ChunkSize)
	}
	logger, err := newLogger(globalOpts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	blocks, err := readBlocks(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	var emitted []hpack.HeaderField

	encoder := hpack.NewEncoder()
	encoder.SetLogger(logger.Named("encoder"))
	encoder.SetHeaderListener(func(name, value string) {
		recorder.Observe(name, value)
		emitted = append(emitted, hpack.HeaderField{Name: name, Value: value})
	})
	encoder.ApplyHeaderTableSizeSetting(encodeOpts.TableSize)
	if encodeOpts.NoCompression {
		encoder.DisableCompression()
	}

	decoder := xhpack.NewDecoder(encodeOpts.TableSize, nil)
	out := cmd.OutOrStdout()
	var verifyErr error
	var totalBytes int
	for i, headers := range blocks {
		emitted = emitted[:0]
		chunks := encodeBlock(encoder, headers, encodeOpts.ChunkSize)
		size := lo.SumBy(chunks, func(c []byte) int { return len(c) })
		totalBytes += size
		logger.Debug("encoded header block",
			zap.Int("block", i),
			zap.Int("fields", len(headers)),
			zap.Int("representations", len(emitted)),
			zap.Int("bytes", size),
			zap.Int("chunks", len(chunks)),
			zap.Uint32("dynamicTableSize", encoder.HeaderTable().Size()),
		)
		if err := writeChunks(out, chunks); err != nil {
			return err
		}
		if encodeOpts.Verify {
			verifyErr = multierr.Append(verifyErr, verifyBlock(decoder, i, bytes.Join(chunks, nil), emitted))
		}
	}

	logger.Info("encoded header blocks",
		zap.Int("blocks", len(blocks)),
		zap.Int("bytes", totalBytes),
		zap.Int("dynamicTableEntries", encoder.HeaderTable().DynamicLen()),
	)
	if encodeOpts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(encodeOpts.MetricsFile, reg); err != nil {
			return err
		}
	}
	if verifyErr != nil {
		for _, err := range multierr.Errors(verifyErr) {
			logger.Error("verification failed", zap.Error(err))
		}
		return fmt.Errorf("%d of %d header blocks failed verification", len(multierr.Errors(verifyErr)), len(blocks))
	}
	return nil
}

func encodeBlock(encoder *hpack.Encoder, headers []hpack.HeaderField, chunkSize int) [][]byte {
	if chunkSize == 0 {
		return [][]byte{encoder.EncodeHeaderSet(headers)}
	}
	var chunks [][]byte
	p := encoder.EncodeHeaderSetProgressive(headers)
	for p.HasNext() {
		chunks = append(chunks, p.Next(chunkSize))
	}
	return chunks
}

func writeChunks(w io.Writer, chunks [][]byte) error {
	if globalOpts.Output == OutputRaw {
		for _, c := range chunks {
			if _, err := w.Write(c); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(lo.Map(chunks, func(c []byte, _ int) string {
		return hex.EncodeToString(c)
	}), " "))
	return err
}

func verifyBlock(decoder *xhpack.Decoder, i int, block []byte, emitted []hpack.HeaderField) error {
	decoded, err := decoder.DecodeFull(block)
	if err != nil {
		return fmt.Errorf("block %d: %w", i, err)
	}
	fields := lo.Map(decoded, func(hf xhpack.HeaderField, _ int) hpack.HeaderField {
		return hpack.HeaderField{Name: hf.Name, Value: hf.Value}
	})
	if !slices.Equal(fields, emitted) {
		return fmt.Errorf("block %d: decoded %d fields, expected %d: %v", i, len(fields), len(emitted), fields)
	}
	return nil
}
