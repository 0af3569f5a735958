package umbf

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdCompressor is the default Compressor: zstd at the library's default
// speed level, same encoder/decoder-reuse pattern as other pack repos'
// zstd wiring (e.g. bureau-foundation-bureau's artifactstore.compressZstd).
type zstdCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdCompressor builds the default Compressor implementation. The
// encoder and decoder are safe for concurrent use and are reused across
// calls.
func NewZstdCompressor() (Compressor, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("umbf: zstd encoder init: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("umbf: zstd decoder init: %w", err)
	}
	return &zstdCompressor{encoder: encoder, decoder: decoder}, nil
}

func (z *zstdCompressor) Compress(data []byte) ([]byte, error) {
	out := z.encoder.EncodeAll(data, nil)
	return out, nil
}

func (z *zstdCompressor) Decompress(data []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	return out, nil
}

var defaultCompressor Compressor

func init() {
	c, err := NewZstdCompressor()
	if err != nil {
		panic("umbf: default zstd compressor init: " + err.Error())
	}
	defaultCompressor = c
}

// DefaultCompressor returns the package-wide zstd Compressor used when a
// caller does not inject one of its own.
func DefaultCompressor() Compressor { return defaultCompressor }
