package umbf

import (
	"sync"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// Block signatures (32-bit, little-endian on wire), normative per the
// format's external interfaces table.
const (
	SignatureImage2D         uint32 = 0x7684573F
	SignatureImageAtlas      uint32 = 0xA3903A92
	SignatureMaterial        uint32 = 0xA8D0C51E
	SignatureScene           uint32 = 0xB7A3EE80
	SignatureMesh            uint32 = 0xF224B521
	SignatureMatRangeAssign  uint32 = 0xC441E54D
	SignatureMaterialInfo    uint32 = 0x6112A229
	SignatureTarget          uint32 = 0x0491F4E9
	SignatureLibrary         uint32 = 0x8D7824FA
)

// Block is the common interface every decoded block kind satisfies.
type Block interface {
	Signature() uint32
}

// DecodeFunc decodes one block's payload from r. r contains exactly the
// block's payload bytes (the frame boundary is enforced by the caller).
// reg and log are threaded through so block kinds that nest whole Files
// (Material, Scene, Library) can recursively encode/decode those files'
// own block streams through the same registry and logger.
type DecodeFunc func(r *Reader, reg *Registry, log umbflog.Logger) (Block, error)

// EncodeFunc encodes a block's payload into w.
type EncodeFunc func(w *Writer, block Block, reg *Registry) error

type registration struct {
	decode DecodeFunc
	encode EncodeFunc
}

// Registry maps a block's 32-bit signature to its (decoder, encoder) pair.
// The zero value is usable; Default holds the process-wide instance used
// by File unless a caller threads its own through.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint32]registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint32]registration)}
}

// Register inserts a (decode, encode) pair under signature. If the
// signature is already registered, the new pair is dropped silently and
// ok reports false — the first registration wins, preventing accidental
// overrides from a second init() call.
func (reg *Registry) Register(signature uint32, decode DecodeFunc, encode EncodeFunc) (ok bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.entries[signature]; exists {
		return false
	}
	if reg.entries == nil {
		reg.entries = make(map[uint32]registration)
	}
	reg.entries[signature] = registration{decode: decode, encode: encode}
	return true
}

// Get returns the pair registered under signature, or ok=false if none.
func (reg *Registry) Get(signature uint32) (decode DecodeFunc, encode EncodeFunc, ok bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, exists := reg.entries[signature]
	if !exists {
		return nil, nil, false
	}
	return r.decode, r.encode, true
}

// Clear removes all registrations.
func (reg *Registry) Clear() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.entries = make(map[uint32]registration)
}

// Default is the process-wide registry populated by registerDefaultBlocks
// at package init, mirroring the source's global singleton registry.
var Default = NewRegistry()

func init() {
	registerDefaultBlocks(Default)
}

func registerDefaultBlocks(reg *Registry) {
	reg.Register(SignatureImage2D, decodeImage2D, encodeImage2D)
	reg.Register(SignatureImageAtlas, decodeAtlas, encodeAtlas)
	reg.Register(SignatureMaterial, decodeMaterial, encodeMaterial)
	reg.Register(SignatureScene, decodeScene, encodeScene)
	reg.Register(SignatureMesh, decodeMesh, encodeMesh)
	reg.Register(SignatureMaterialInfo, decodeMaterialInfo, encodeMaterialInfo)
	reg.Register(SignatureMatRangeAssign, decodeMatRangeAssign, encodeMatRangeAssign)
	reg.Register(SignatureTarget, decodeTarget, encodeTarget)
	reg.Register(SignatureLibrary, decodeLibrary, encodeLibrary)
}
