package umbf

import (
	"path/filepath"
	"testing"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// TestMinimalSceneRoundTrip mirrors the minimal-scene round-trip
// scenario: one uncompressed scene block with a single object, empty
// textures and materials.
func TestMinimalSceneRoundTrip(t *testing.T) {
	t.Parallel()

	file := &File{
		Header: Header{TypeSign: TypeScene},
		Blocks: []Block{
			&Scene{Objects: []Object{{ID: 42, Name: "root"}}},
		},
	}

	path := filepath.Join(t.TempDir(), "scene.umb")
	if err := file.Save(path, nil, nil, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := ReadFromDisk(path, nil, nil, nil, umbflog.Discard())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(got.Blocks))
	}
	if got.Blocks[0].Signature() != SignatureScene {
		t.Fatalf("signature = 0x%08X, want 0x%08X", got.Blocks[0].Signature(), SignatureScene)
	}
	scene := got.Blocks[0].(*Scene)
	if len(scene.Objects) != 1 || scene.Objects[0].ID != 42 || scene.Objects[0].Name != "root" {
		t.Fatalf("scene = %+v", scene)
	}
	if got.Checksum == 0 {
		t.Fatalf("checksum should be non-zero for a non-empty block stream")
	}
}

// TestChecksumSensitivityToBitFlip mirrors the checksum-sensitivity
// scenario: flipping one bit in the block-stream region leaves the file
// structurally decodable but changes the computed checksum.
func TestChecksumSensitivityToBitFlip(t *testing.T) {
	t.Parallel()

	file := &File{
		Header: Header{TypeSign: TypeScene},
		Blocks: []Block{
			&Scene{Objects: []Object{{ID: 1, Name: "a"}}},
		},
	}

	fs := DefaultFilesystem()
	path := filepath.Join(t.TempDir(), "scene.umb")
	if err := file.Save(path, nil, fs, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	original, err := fs.ReadBinary(path)
	if err != nil {
		t.Fatalf("read binary: %v", err)
	}
	before, err := ReadFromBytes(original, nil, nil, umbflog.Discard())
	if err != nil {
		t.Fatalf("read before: %v", err)
	}

	tampered := append([]byte(nil), original...)
	// Flip one bit inside the scene block's payload bytes (past
	// magic+header+size+signature), so the frame still parses structurally.
	flipAt := 35
	if flipAt >= len(tampered) {
		t.Fatalf("test fixture too short: len=%d", len(tampered))
	}
	tampered[flipAt] ^= 0x01

	after, err := ReadFromBytes(tampered, nil, nil, umbflog.Discard())
	if err != nil {
		t.Fatalf("tampered file should still decode structurally: %v", err)
	}
	if after.Checksum == before.Checksum {
		t.Fatalf("checksum did not change after a bit flip: 0x%08X", after.Checksum)
	}
}

func TestReadFromBytesRejectsBadMagic(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 16)
	if _, err := ReadFromBytes(buf, nil, nil, umbflog.Discard()); err != ErrBadMagic {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestFileSaveWithCompressionRoundTrips(t *testing.T) {
	t.Parallel()

	file := &File{
		Header: Header{TypeSign: TypeMaterial, Compressed: true},
		Blocks: []Block{
			&Material{Albedo: MaterialNode{RGB: Vec3{X: 1, Y: 0.5, Z: 0.25}}},
		},
	}

	path := filepath.Join(t.TempDir(), "material.umb")
	if err := file.Save(path, nil, nil, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ReadFromDisk(path, nil, nil, nil, umbflog.Discard())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !got.Header.Compressed {
		t.Fatalf("decoded header lost the compressed flag")
	}
	material := got.Blocks[0].(*Material)
	if material.Albedo.RGB != (Vec3{X: 1, Y: 0.5, Z: 0.25}) {
		t.Fatalf("albedo mismatch: %+v", material.Albedo)
	}
}
