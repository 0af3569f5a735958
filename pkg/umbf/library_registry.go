package umbf

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// LibraryRegistry scans a directory for .umlib files and indexes the
// Library each one carries by its root node name. This is a distinct
// component from the block-signature Registry: the signature registry
// resolves a block kind's decoder, this one resolves a named library by
// root-node name. Grounded on original_source's umbf::Registry::init
// (src/umbf.cpp).
type LibraryRegistry struct {
	mu        sync.RWMutex
	libraries map[string]*Library
}

func NewLibraryRegistry() *LibraryRegistry {
	return &LibraryRegistry{libraries: make(map[string]*Library)}
}

// Init lists dir via fs, attempts to load each .umlib file, and indexes
// the Library carried by each under its root node's name. Per-file
// failures are logged and do not abort the scan; a missing or unreadable
// directory fails with ErrAssetsNotFound.
//
// Each candidate file is probed through OpenMapped rather than
// fs.ReadBinary: a directory of .umlib files is exactly the "many files,
// read once at startup" case OpenMapped's mmap-preferring Open exists
// for, and scanning through it avoids a full buffered copy per file.
func (lr *LibraryRegistry) Init(dir string, compressor Compressor, fs Filesystem, reg *Registry, log umbflog.Logger) error {
	if fs == nil {
		fs = DefaultFilesystem()
	}
	if log == nil {
		log = umbflog.Discard()
	}

	files, err := fs.ListFiles(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAssetsNotFound, dir, err)
	}

	lr.mu.Lock()
	defer lr.mu.Unlock()

	for _, path := range files {
		if filepath.Ext(path) != ".umlib" {
			continue
		}
		log.Info("loading library", "path", path)
		library, ok := lr.loadLibraryFile(path, compressor, reg, log)
		if !ok {
			continue
		}
		lr.libraries[library.Root.Name] = library
	}
	return nil
}

// loadLibraryFile mmaps path, decodes it as a File, and returns its first
// block as a Library. ok is false on any failure, already logged.
func (lr *LibraryRegistry) loadLibraryFile(path string, compressor Compressor, reg *Registry, log umbflog.Logger) (*Library, bool) {
	mapped, err := OpenMapped(path)
	if err != nil {
		umbflog.ErrorLoadFailed(log, path, err)
		return nil, false
	}
	defer mapped.Close()

	asset, err := ReadFromBytes(mapped.Bytes(), compressor, reg, log)
	if err != nil || asset.Header.TypeSign != TypeLibrary || len(asset.Blocks) == 0 {
		log.Warn("failed to load library", "path", path, "error", err)
		return nil, false
	}
	library, ok := asset.Blocks[0].(*Library)
	if !ok {
		log.Warn("failed to load library: first block is not a library", "path", path)
		return nil, false
	}
	return library, true
}

// Get returns the library indexed under name, or ok=false if none.
func (lr *LibraryRegistry) Get(name string) (*Library, bool) {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	lib, ok := lr.libraries[name]
	return lib, ok
}

// Names returns every indexed library's root node name.
func (lr *LibraryRegistry) Names() []string {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	names := make([]string, 0, len(lr.libraries))
	for name := range lr.libraries {
		names = append(names, name)
	}
	return names
}

// Fingerprint returns the sha256 digest of a file's bytes, for detecting
// whether a library file on disk has changed. No command in cmd/umbf calls
// it; the verify subcommand compares the CRC-32 checksum only. Grounded on the teacher's content-keyed
// dedup pattern (pkg/mcf/dedup.go), repurposed here for change detection
// instead of tensor deduplication.
func Fingerprint(data []byte) [32]byte {
	return sha256.Sum256(data)
}
