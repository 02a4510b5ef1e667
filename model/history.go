package model

// History keeps the hashes of the most recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history that remembers up to size generations
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Record adds the state of g and drops the oldest entry once full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether g matches a recorded generation, meaning the board
// is a still life or an oscillator whose period fits in the history
func (h *History) Repeats(g *Grid) bool {
	current := g.Hash()
	for _, hash := range h.hashes {
		if hash == current {
			return true
		}
	}
	return false
}
