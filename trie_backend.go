package ortho

// trieNode spells one character on the path from the root. The terminal
// flag marks the path from the root to this node as a complete profile
// grapheme. Each node exclusively owns its children; the trie lives and
// dies with the profile that built it.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// nodeTrie is the default segmentTrie backend. Grapheme inventories are
// small (hundreds of entries), so a plain pointer trie beats anything
// compacted.
type nodeTrie struct {
	root *trieNode
}

func newNodeTrie() *nodeTrie {
	// The root is terminal: the empty prefix represents the word boundary.
	return &nodeTrie{root: &trieNode{terminal: true}}
}

// Insert adds one NFD grapheme, creating intermediate nodes as needed and
// marking the final node terminal.
func (nt *nodeTrie) Insert(grapheme string) {
	node := nt.root
	for _, r := range grapheme {
		child := node.children[r]
		if child == nil {
			if node.children == nil {
				node.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}
	node.terminal = true
}

func (nt *nodeTrie) Walker() segmentWalker {
	return &nodeWalker{node: nt.root}
}

func (nt *nodeTrie) Stats() segmentTrieStats {
	stats := segmentTrieStats{Backend: "node"}
	countNodes(nt.root, 0, &stats)
	return stats
}

func countNodes(node *trieNode, depth int, stats *segmentTrieStats) {
	stats.Nodes++
	if node.terminal {
		stats.Terminals++
	}
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, child := range node.children {
		countNodes(child, depth+1, stats)
	}
}

// nodeWalker walks a nodeTrie downward, one character per step.
type nodeWalker struct {
	node *trieNode
}

func (w *nodeWalker) Next(r rune) (bool, bool) {
	if w.node == nil {
		return false, false
	}
	w.node = w.node.children[r]
	if w.node == nil {
		return false, false
	}
	return true, w.node.terminal
}
