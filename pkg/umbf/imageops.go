package umbf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// stdImageOps is the default ImageOps: channel-count conversion, solid
// fills, and area copies over the raw byte buffer Image2D carries.
// ConvertImage does not interpret dstFormat and keeps the source's bytes
// per channel.
// Ported from original_source's fill_color_pixels, copy_pixels_to_area,
// and convert_image (src/utils.cpp), collapsing their template-per-type
// dispatch into a single integer/float channel reader and writer since
// Go has no template specialization to mirror directly.
type stdImageOps struct{}

// NewStdImageOps returns the default ImageOps implementation.
func NewStdImageOps() ImageOps { return stdImageOps{} }

func (stdImageOps) FillColorPixels(img *Image2D, color [4]float64) {
	stride := int(img.ChannelCount) * int(img.BytesPerChannel)
	pixels := make([]byte, img.Size())
	if stride == 0 {
		img.Pixels = pixels
		return
	}
	unit := make([]byte, stride)
	for ch := 0; ch < int(img.ChannelCount) && ch < 4; ch++ {
		writeChannel(unit[ch*int(img.BytesPerChannel):], img.BytesPerChannel, color[ch])
	}
	for off := 0; off+stride <= len(pixels); off += stride {
		copy(pixels[off:off+stride], unit)
	}
	img.Pixels = pixels
}

func (stdImageOps) CopyPixelsToArea(src, dst *Image2D, rect Rect) error {
	if src.BytesPerChannel != dst.BytesPerChannel || src.ChannelCount != dst.ChannelCount {
		return fmt.Errorf("umbf: copy pixels to area: format mismatch (src %dx%d bpc=%d, dst %dx%d bpc=%d)",
			src.ChannelCount, src.BytesPerChannel, src.BytesPerChannel, dst.ChannelCount, dst.BytesPerChannel, dst.BytesPerChannel)
	}
	if int32(rect.X)+rect.W > int32(dst.Width) || int32(rect.Y)+rect.H > int32(dst.Height) {
		return fmt.Errorf("umbf: copy pixels to area: dst area out of bounds")
	}

	bytesPerPixel := int(dst.ChannelCount) * int(dst.BytesPerChannel)
	srcRowBytes := int(rect.W) * bytesPerPixel
	dstRowBytes := int(dst.Width) * bytesPerPixel

	for y := 0; y < int(rect.H); y++ {
		srcOff := y * srcRowBytes
		dstOff := (int(rect.Y)+y)*dstRowBytes + int(rect.X)*bytesPerPixel
		copy(dst.Pixels[dstOff:dstOff+srcRowBytes], src.Pixels[srcOff:srcOff+srcRowBytes])
	}
	return nil
}

func (stdImageOps) ConvertImage(img *Image2D, dstFormat PixelFormat, dstChannels int) ([]byte, error) {
	srcChannels := int(img.ChannelCount)
	if srcChannels == 0 {
		return nil, fmt.Errorf("umbf: convert image: zero source channels")
	}
	pixelCount := len(img.Pixels) / int(img.BytesPerChannel) / srcChannels
	dstBytesPerChannel := int(img.BytesPerChannel)

	out := make([]byte, pixelCount*dstChannels*dstBytesPerChannel)
	for pixel := 0; pixel < pixelCount; pixel++ {
		for ch := 0; ch < dstChannels; ch++ {
			var value float64
			if ch < srcChannels {
				srcOff := (pixel*srcChannels + ch) * int(img.BytesPerChannel)
				value = readChannel(img.Pixels[srcOff:], img.BytesPerChannel)
			}
			dstOff := (pixel*dstChannels + ch) * dstBytesPerChannel
			writeChannel(out[dstOff:], uint16(dstBytesPerChannel), value)
		}
	}
	return out, nil
}

// readChannel interprets bytesPerChannel bytes as a normalized [0,1]
// sample: unsigned integers are scaled by their max value, 4-byte runs
// are read as raw float32.
func readChannel(b []byte, bytesPerChannel uint16) float64 {
	switch bytesPerChannel {
	case 1:
		return float64(b[0]) / 255.0
	case 2:
		return float64(binary.LittleEndian.Uint16(b)) / 65535.0
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	default:
		return 0
	}
}

func writeChannel(dst []byte, bytesPerChannel uint16, value float64) {
	switch bytesPerChannel {
	case 1:
		dst[0] = byte(clamp01(value) * 255.0)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(clamp01(value)*65535.0))
	case 4:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(value)))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
