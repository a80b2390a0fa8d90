// Package bktree implements a Burkhard-Keller tree keyed on the
// Damerau-Levenshtein distance from pkg/distance, letting Find locate every
// stored word within a given edit-distance tolerance of a query without
// comparing against the whole dictionary.
package bktree

import "github.com/mkovacs/lexiprep/pkg/distance"

// Node is a single node in the tree. children maps the edit distance
// between word and the child's word to that child, mirroring the sparse
// distance-keyed adjacency the tree relies on for pruning.
type Node struct {
	word     string
	children map[int]*Node
}

func newNode(word string) *Node {
	return &Node{word: word, children: make(map[int]*Node)}
}

// Tree is a BK-tree over lowercase English words. The zero value is not
// ready to use; construct one with New.
type Tree struct {
	root *Node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds word to the tree. The first call sets the root. Re-inserting
// a word already present in the tree (edit distance 0 from an existing
// node anywhere along the descent) is a no-op: the original algorithm this
// is grounded on would instead keep chaining same-word children forever,
// growing without bound, since the sole distance-0 child slot is reused as
// a description of "identical word" and is repeatedly found already
// occupied.
func (t *Tree) Insert(word string) {
	if t.root == nil {
		t.root = newNode(word)
		return
	}

	node := t.root
	for {
		d := distance.Distance(word, node.word)
		if d == 0 {
			return
		}
		child, ok := node.children[d]
		if !ok {
			node.children[d] = newNode(word)
			return
		}
		node = child
	}
}

// Find returns every stored word whose distance from query is at most
// tolerance. It prunes subtrees whose child edit distance falls outside
// [d-tolerance, d+tolerance], where d is the query's distance to the
// current node, using the triangle inequality to guarantee no matching
// word is skipped.
func (t *Tree) Find(query string, tolerance uint) []string {
	var results []string
	if t.root == nil {
		return results
	}
	find(t.root, query, tolerance, &results)
	return results
}

func find(node *Node, query string, tolerance uint, results *[]string) {
	d := distance.Distance(query, node.word)

	if d <= int(tolerance) {
		*results = append(*results, node.word)
	}

	minDist := d - int(tolerance)
	maxDist := d + int(tolerance)

	for childDist, child := range node.children {
		if childDist >= minDist && childDist <= maxDist {
			find(child, query, tolerance, results)
		}
	}
}
