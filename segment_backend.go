package ortho

// segmentWalker advances through successive prefix states for one query
// word. Each trie node has at most one child per character, so a walk
// never branches.
type segmentWalker interface {
	// Next advances the walk by one character. ok reports whether the
	// extended prefix is still a path in the trie, terminal whether that
	// prefix spells a complete profile grapheme.
	Next(r rune) (ok bool, terminal bool)
}

type segmentTrieStats struct {
	Backend   string
	Nodes     int
	Terminals int
	MaxDepth  int
}

// segmentTrie is the internal backend abstraction for the grapheme index.
// Backends are write-once: Insert during profile loading, walks thereafter.
type segmentTrie interface {
	Insert(grapheme string)
	Walker() segmentWalker
	Stats() segmentTrieStats
}
