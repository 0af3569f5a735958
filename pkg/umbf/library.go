package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// LibraryNode is one entry in a Library's file tree. A node with no
// children is a leaf: if IsFolder is false it must carry an Asset with a
// non-none TypeSign, or the tree is corrupted. Grounded on
// original_source's bin_stream::write/read specializations for
// umbf::Library::Node.
type LibraryNode struct {
	Name     string
	IsFolder bool
	Children []LibraryNode
	Asset    *File // nil unless this is a non-folder leaf
}

// Library is a named recursive file tree, normally persisted with the
// .umlib extension.
type Library struct {
	Root LibraryNode
}

func (l *Library) Signature() uint32 { return SignatureLibrary }

// writeLibraryNode serializes the tree rooted at root with an explicit
// work stack rather than recursion, per the design note on recursive
// node encoding: prefer an iterative pre-order walk over deep call
// stacks. Children are pushed in reverse so they pop — and so their
// bytes are written — in original order.
func writeLibraryNode(w *Writer, root LibraryNode, reg *Registry) error {
	stack := []*LibraryNode{&root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		w.WriteString(node.Name)
		w.WriteBool(node.IsFolder)
		if len(node.Children) > 0xFFFF {
			return fmt.Errorf("umbf: library: %d children exceeds u16 count", len(node.Children))
		}
		w.WriteU16(uint16(len(node.Children)))
		if len(node.Children) > 0 {
			for i := len(node.Children) - 1; i >= 0; i-- {
				stack = append(stack, &node.Children[i])
			}
			continue
		}
		if !node.IsFolder {
			if node.Asset == nil || node.Asset.Header.TypeSign == TypeNone {
				return fmt.Errorf("%w: leaf %q has no asset or type_sign=none", ErrCorruptLibrary, node.Name)
			}
			if err := node.Asset.writeBody(w, reg); err != nil {
				return err
			}
		}
	}
	return nil
}

// readLibraryNode is the decode counterpart, using the same explicit
// work-stack pre-order walk — the direction that actually faces hostile
// input, since an attacker controls the byte stream's declared tree
// shape and depth.
func readLibraryNode(r *Reader, reg *Registry, log umbflog.Logger) (LibraryNode, error) {
	root := &LibraryNode{}
	stack := []*LibraryNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var err error
		if node.Name, err = r.ReadString(); err != nil {
			return LibraryNode{}, err
		}
		if node.IsFolder, err = r.ReadBool(); err != nil {
			return LibraryNode{}, err
		}
		childCount, err := r.ReadU16()
		if err != nil {
			return LibraryNode{}, err
		}
		if childCount > 0 {
			node.Children = make([]LibraryNode, childCount)
			for i := int(childCount) - 1; i >= 0; i-- {
				stack = append(stack, &node.Children[i])
			}
			continue
		}
		if !node.IsFolder {
			asset, err := readFileBody(r, reg, log)
			if err != nil {
				return LibraryNode{}, err
			}
			if asset.Header.TypeSign == TypeNone {
				return LibraryNode{}, fmt.Errorf("%w: leaf %q has type_sign=none", ErrCorruptLibrary, node.Name)
			}
			node.Asset = asset
		}
	}
	return *root, nil
}

// GetNode walks the tree matching each path segment against child node
// names by exact equality, returning nil if any segment is unmatched.
func (l *Library) GetNode(path []string) *LibraryNode {
	current := &l.Root
	for _, segment := range path {
		var next *LibraryNode
		for i := range current.Children {
			if current.Children[i].Name == segment {
				next = &current.Children[i]
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

func encodeLibrary(w *Writer, block Block, reg *Registry) error {
	library, ok := block.(*Library)
	if !ok {
		return fmt.Errorf("umbf: encodeLibrary: wrong block type %T", block)
	}
	return writeLibraryNode(w, library.Root, reg)
}

func decodeLibrary(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	root, err := readLibraryNode(r, reg, log)
	if err != nil {
		return nil, err
	}
	return &Library{Root: root}, nil
}
