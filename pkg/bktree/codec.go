package bktree

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes t to w using the depth-first binary layout:
//
//	bk_node := word_len:u32  word:[]byte  num_children:u32  { distance:u16, bk_node }*num_children
//
// An empty tree is encoded as a single node with word_len=0 and
// num_children=0.
func Encode(t *Tree, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.root == nil {
		if err := encodeNode(newNode(""), bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	if err := encodeNode(t.root, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeNode(n *Node, w *bufio.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.word))); err != nil {
		return fmt.Errorf("write word length: %w", err)
	}
	if _, err := w.WriteString(n.word); err != nil {
		return fmt.Errorf("write word: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.children))); err != nil {
		return fmt.Errorf("write children count: %w", err)
	}

	for _, d := range sortedDistances(n.children) {
		if err := binary.Write(w, binary.LittleEndian, uint16(d)); err != nil {
			return fmt.Errorf("write distance: %w", err)
		}
		if err := encodeNode(n.children[d], w); err != nil {
			return err
		}
	}

	return nil
}

// sortedDistances returns the keys of children in ascending order, giving
// Encode a deterministic byte layout for a given tree.
func sortedDistances(children map[int]*Node) []int {
	keys := make([]int, 0, len(children))
	for d := range children {
		keys = append(keys, d)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// Decode reads a Tree previously written by Encode.
func Decode(r io.Reader) (*Tree, error) {
	br := bufio.NewReader(r)
	root, err := decodeNode(br)
	if err != nil {
		return nil, err
	}
	if root.word == "" && len(root.children) == 0 {
		return &Tree{}, nil
	}
	return &Tree{root: root}, nil
}

func decodeNode(r *bufio.Reader) (*Node, error) {
	var wordLen uint32
	if err := binary.Read(r, binary.LittleEndian, &wordLen); err != nil {
		return nil, fmt.Errorf("read word length: %w", err)
	}

	word := make([]byte, wordLen)
	if wordLen > 0 {
		if _, err := io.ReadFull(r, word); err != nil {
			return nil, fmt.Errorf("read word: %w", err)
		}
	}

	var numChildren uint32
	if err := binary.Read(r, binary.LittleEndian, &numChildren); err != nil {
		return nil, fmt.Errorf("read children count: %w", err)
	}

	n := newNode(string(word))

	for i := uint32(0); i < numChildren; i++ {
		var d uint16
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, fmt.Errorf("read distance: %w", err)
		}
		child, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		n.children[int(d)] = child
	}

	return n, nil
}
