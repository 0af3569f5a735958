package umbf

// The codec treats pixel conversion, atlas packing, compression, and
// filesystem I/O as external collaborators rather than core logic —
// mirrored here as small interfaces, the same shape as the teacher's
// pkg/quant.QuantScheme (an interface with a default, swappable
// implementation rather than a hardcoded algorithm).

// RectPacker bin-packs a set of rectangles into a square atlas no larger
// than maxSize on a side, snapping sizes to discardStep where the packer
// supports it.
type RectPacker interface {
	PackRects(rects []Rect, maxSize int, discardStep int) (packed []Rect, ok bool)
}

// ImageOps performs pixel-format conversion and raster edits UMBF itself
// never interprets the meaning of.
type ImageOps interface {
	ConvertImage(img *Image2D, dstFormat PixelFormat, dstChannels int) ([]byte, error)
	FillColorPixels(img *Image2D, color [4]float64)
	CopyPixelsToArea(src, dst *Image2D, rect Rect) error
}

// Compressor is the whole-body compressor/decompressor selected by the
// host application. UMBF does not fix an algorithm; the header's
// Compressed bit only records whether one was applied.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Filesystem is the byte-in/byte-out service UMBF reads and writes
// through; the package opens files itself only in OpenMapped and
// Target.FetchToCache.
type Filesystem interface {
	ReadBinary(path string) ([]byte, error)
	WriteBinary(path string, data []byte) error
	ListFiles(dir string) ([]string, error)
}
