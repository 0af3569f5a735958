package umbf

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// osFilesystem is the default Filesystem: a thin wrapper over the os
// package, mirroring the spec's treatment of filesystem I/O as a
// byte-in/byte-out service external to the codec.
type osFilesystem struct{}

// DefaultFilesystem returns the package-wide Filesystem used when a caller
// does not inject one of its own.
func DefaultFilesystem() Filesystem { return osFilesystem{} }

func (osFilesystem) ReadBinary(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFilesystem) WriteBinary(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (osFilesystem) ListFiles(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mappedFile holds a memory-mapped file's backing bytes, used by the
// library registry to read each .umlib file it decodes. Ported from the
// teacher's pkg/mcf.Open mmap-preferring pattern.
type mappedFile struct {
	data    []byte
	mmapped bool
	f       *os.File
}

// OpenMapped memory-maps path read-only, falling back to a buffered read
// if mmap is unavailable on this platform. The caller must call Close to
// release the mapping.
func OpenMapped(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := stat.Size()
	if size == 0 {
		_ = f.Close()
		return &mappedFile{data: []byte{}, f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		return &mappedFile{data: data, mmapped: true, f: f}, nil
	}

	buf, readErr := os.ReadFile(path)
	if readErr != nil {
		_ = f.Close()
		return nil, readErr
	}
	_ = f.Close()
	return &mappedFile{data: buf}, nil
}

func (m *mappedFile) Bytes() []byte { return m.data }

func (m *mappedFile) Close() error {
	if m == nil {
		return nil
	}
	var err error
	if m.mmapped {
		err = unix.Munmap(m.data)
	}
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
	}
	m.data = nil
	return err
}
