package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// PixelFormat is an opaque, host-defined pixel layout tag. UMBF does not
// fix a pixel format enum; ImageOps implementations interpret the value.
type PixelFormat uint8

// Image2D is a raw pixel buffer with a small amount of layout metadata.
// Grounded on original_source's write_image_info/read_image_info
// (src/stream.cpp).
type Image2D struct {
	Width           uint16
	Height          uint16
	ChannelCount    uint16
	ChannelNames    []string
	BytesPerChannel uint16
	PixelFormat     PixelFormat
	Pixels          []byte
}

func (i *Image2D) Signature() uint32 { return SignatureImage2D }

// Size is the expected pixel-buffer length: width*height*channel_count*bytes_per_channel.
func (i *Image2D) Size() int {
	return int(i.Width) * int(i.Height) * int(i.ChannelCount) * int(i.BytesPerChannel)
}

func encodeImage2D(w *Writer, block Block, reg *Registry) error {
	img, ok := block.(*Image2D)
	if !ok {
		return fmt.Errorf("umbf: encodeImage2D: wrong block type %T", block)
	}
	if img.Pixels == nil {
		return ErrInvalidPixels
	}
	w.WriteU16(img.Width)
	w.WriteU16(img.Height)
	w.WriteU16(img.ChannelCount)
	if len(img.ChannelNames) > 0xFF {
		return fmt.Errorf("umbf: image2d: %d channel names exceeds u8 count", len(img.ChannelNames))
	}
	w.WriteU8(uint8(len(img.ChannelNames)))
	for _, name := range img.ChannelNames {
		w.WriteString(name)
	}
	w.WriteU16(img.BytesPerChannel)
	w.WriteU8(uint8(img.PixelFormat))
	if len(img.Pixels) != img.Size() {
		return fmt.Errorf("umbf: image2d: pixels length %d does not match width*height*channels*bytes_per_channel %d",
			len(img.Pixels), img.Size())
	}
	w.WriteRaw(img.Pixels)
	return nil
}

func decodeImage2D(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	img := &Image2D{}
	var err error
	if img.Width, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if img.Height, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if img.ChannelCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	nameCount, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	img.ChannelNames = make([]string, nameCount)
	for i := range img.ChannelNames {
		if img.ChannelNames[i], err = r.ReadString(); err != nil {
			return nil, err
		}
	}
	if img.BytesPerChannel, err = r.ReadU16(); err != nil {
		return nil, err
	}
	format, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	img.PixelFormat = PixelFormat(format)

	pixels, err := r.ReadRaw(img.Size())
	if err != nil {
		return nil, err
	}
	img.Pixels = append([]byte(nil), pixels...)
	return img, nil
}
