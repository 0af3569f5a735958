package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// EncodeBlocks serializes blocks as a terminated sequence of frames:
//
//	frame := u64 block_size, u32 signature, payload[block_size bytes]
//
// block_size counts only the bytes after signature. The sequence ends with
// a zero-size sentinel frame.
func EncodeBlocks(w *Writer, blocks []Block, reg *Registry) error {
	for _, block := range blocks {
		signature := block.Signature()
		_, encode, ok := reg.Get(signature)
		if !ok {
			return fmt.Errorf("umbf: no encoder registered for signature 0x%08X", signature)
		}
		payload := NewWriter()
		if err := encode(payload, block, reg); err != nil {
			return fmt.Errorf("umbf: encode block 0x%08X: %w", signature, err)
		}
		w.WriteU64(uint64(payload.Len()))
		w.WriteU32(signature)
		w.WriteRaw(payload.Bytes())
	}
	w.WriteU64(0)
	return nil
}

// DecodeBlocks reads frames until the zero-size terminator. Unregistered
// signatures are skipped by block_size (forward compatibility). A
// registered decoder that fails logs a warning and drops the block; the
// remaining frames still decode.
func DecodeBlocks(r *Reader, reg *Registry, log umbflog.Logger) ([]Block, error) {
	if log == nil {
		log = umbflog.Discard()
	}
	var blocks []Block
	for {
		size, err := r.ReadU64()
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return blocks, nil
		}
		signature, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if size > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: block 0x%08X declares implausible size %d", ErrTruncatedStream, signature, size)
		}
		payload, err := r.ReadRaw(int(size))
		if err != nil {
			return nil, err
		}

		decode, _, ok := reg.Get(signature)
		if !ok {
			continue
		}

		block, decodeErr := decode(NewReader(payload), reg, log)
		if decodeErr != nil {
			umbflog.WarnBlockDropped(log, signature, decodeErr)
			continue
		}
		if block == nil {
			umbflog.WarnBlockDropped(log, signature, nil)
			continue
		}
		blocks = append(blocks, block)
	}
}
