package umbf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// Target is an indirect reference to an external asset: its address, the
// header expected there, and the checksum expected to match once fetched.
type Target struct {
	Header   Header
	URL      string
	Checksum uint32
}

func (t *Target) Signature() uint32 { return SignatureTarget }

func encodeTarget(w *Writer, block Block, reg *Registry) error {
	target, ok := block.(*Target)
	if !ok {
		return fmt.Errorf("umbf: encodeTarget: wrong block type %T", block)
	}
	packed := target.Header.Pack()
	w.WriteRaw(packed[:])
	w.WriteString(target.URL)
	w.WriteU32(target.Checksum)
	return nil
}

func decodeTarget(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	target := &Target{}
	packed, err := r.ReadRaw(12)
	if err != nil {
		return nil, err
	}
	var headerBytes [12]byte
	copy(headerBytes[:], packed)
	target.Header = UnpackHeader(headerBytes)

	if target.URL, err = r.ReadString(); err != nil {
		return nil, err
	}
	if target.Checksum, err = r.ReadU32(); err != nil {
		return nil, err
	}
	return target, nil
}

// FetchToCache copies a Target's local-file URL into cachePath, skipping
// the copy if cachePath already exists when skipExisting is set. Only
// local filesystem addresses are supported — UMBF treats network
// transport as a host-application concern (see spec §1). Ported from the
// legacy revision's Target::fetchToCache (original_source
// src/library.cpp), which dispatched on an address-protocol byte; this
// port only implements the file-protocol branch since the current
// revision's Target has no protocol field at all (URL is whatever the
// host understands).
func (t *Target) FetchToCache(relativeRoot, cachePath string, skipExisting bool) error {
	if skipExisting {
		if _, err := os.Stat(cachePath); err == nil {
			return nil
		}
	}

	url := t.URL
	if !filepath.IsAbs(url) {
		url = filepath.Join(relativeRoot, url)
	}
	if url == cachePath {
		return nil
	}

	data, err := os.ReadFile(url)
	if err != nil {
		return fmt.Errorf("umbf: fetch target %q: %w", t.URL, err)
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return fmt.Errorf("umbf: cache target %q: %w", t.URL, err)
	}
	return nil
}
