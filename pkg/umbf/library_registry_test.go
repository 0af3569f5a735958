package umbf

import (
	"path/filepath"
	"testing"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

func TestLibraryRegistryInitIndexesByRootName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lib := &File{
		Header: Header{TypeSign: TypeLibrary},
		Blocks: []Block{
			&Library{Root: LibraryNode{Name: "props", IsFolder: true}},
		},
	}
	if err := lib.Save(filepath.Join(dir, "props.umlib"), nil, nil, nil); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	// A non-.umlib file in the same directory must be ignored.
	other := &File{Header: Header{TypeSign: TypeScene}, Blocks: []Block{&Scene{}}}
	if err := other.Save(filepath.Join(dir, "scene.umb"), nil, nil, nil); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	reg := NewLibraryRegistry()
	if err := reg.Init(dir, nil, nil, nil, umbflog.Discard()); err != nil {
		t.Fatalf("init: %v", err)
	}

	names := reg.Names()
	if len(names) != 1 || names[0] != "props" {
		t.Fatalf("names = %v, want [props]", names)
	}
	got, ok := reg.Get("props")
	if !ok || got.Root.Name != "props" {
		t.Fatalf("Get(props) = %+v, %v", got, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Fatalf("Get(missing) should report ok=false")
	}
}

func TestLibraryRegistryInitFailsOnMissingDir(t *testing.T) {
	t.Parallel()

	reg := NewLibraryRegistry()
	err := reg.Init(filepath.Join(t.TempDir(), "does-not-exist"), nil, nil, nil, umbflog.Discard())
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestFingerprintIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Fingerprint([]byte("hello"))
	b := Fingerprint([]byte("hello"))
	c := Fingerprint([]byte("world"))
	if a != b {
		t.Fatalf("fingerprint of identical input differs: %x vs %x", a, b)
	}
	if a == c {
		t.Fatalf("fingerprint collided for different input")
	}
}
