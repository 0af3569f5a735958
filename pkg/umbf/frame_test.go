package umbf

import (
	"testing"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

func TestEncodeDecodeBlocksRoundTrip(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(SignatureMaterialInfo, decodeMaterialInfo, encodeMaterialInfo)

	blocks := []Block{
		&MaterialInfo{ID: 1, Name: "first", Assignments: []uint64{10, 11}},
		&MaterialInfo{ID: 2, Name: "second", Assignments: nil},
	}

	w := NewWriter()
	if err := EncodeBlocks(w, blocks, reg); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeBlocks(NewReader(w.Bytes()), reg, umbflog.Discard())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d blocks, want 2", len(decoded))
	}
	first, ok := decoded[0].(*MaterialInfo)
	if !ok || first.ID != 1 || first.Name != "first" || len(first.Assignments) != 2 {
		t.Fatalf("decoded[0] = %+v", decoded[0])
	}
}

func TestDecodeBlocksSkipsUnregisteredSignature(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(SignatureMaterialInfo, decodeMaterialInfo, encodeMaterialInfo)

	// Build a frame with a signature nothing is registered for, followed
	// by a recognized one, and confirm the unknown one is skipped by its
	// declared size rather than aborting the decode.
	w := NewWriter()
	payload := NewWriter()
	payload.WriteRaw([]byte{1, 2, 3, 4, 5})
	w.WriteU64(uint64(payload.Len()))
	w.WriteU32(0xFFFFFFFF)
	w.WriteRaw(payload.Bytes())

	known := NewWriter()
	if err := encodeMaterialInfo(known, &MaterialInfo{ID: 99, Name: "known"}, reg); err != nil {
		t.Fatalf("encode known: %v", err)
	}
	w.WriteU64(uint64(known.Len()))
	w.WriteU32(SignatureMaterialInfo)
	w.WriteRaw(known.Bytes())
	w.WriteU64(0)

	decoded, err := DecodeBlocks(NewReader(w.Bytes()), reg, umbflog.Discard())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d blocks, want 1 (unknown signature should be skipped)", len(decoded))
	}
	info, ok := decoded[0].(*MaterialInfo)
	if !ok || info.ID != 99 {
		t.Fatalf("decoded[0] = %+v", decoded[0])
	}
}

func TestRegistryFirstRegistrationWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if ok := reg.Register(SignatureMesh, decodeMesh, encodeMesh); !ok {
		t.Fatalf("first registration should succeed")
	}
	if ok := reg.Register(SignatureMesh, decodeMaterialInfo, encodeMaterialInfo); ok {
		t.Fatalf("second registration for the same signature should be rejected")
	}
	decode, _, ok := reg.Get(SignatureMesh)
	if !ok {
		t.Fatalf("expected a registration for SignatureMesh")
	}
	if decode == nil {
		t.Fatalf("expected the first decoder to remain registered")
	}
}
