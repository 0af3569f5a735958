package umbf

import "errors"

var (
	ErrBadMagic            = errors.New("umbf: bad magic")
	ErrTruncatedStream     = errors.New("umbf: truncated stream")
	ErrBlockDecodeFailed   = errors.New("umbf: block decode failed")
	ErrCorruptLibrary      = errors.New("umbf: corrupt library")
	ErrInvalidPixels       = errors.New("umbf: invalid pixels")
	ErrCompressionFailed   = errors.New("umbf: compression failed")
	ErrDecompressionFailed = errors.New("umbf: decompression failed")
	ErrAssetsNotFound      = errors.New("umbf: assets directory not found")
)
