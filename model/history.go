package model

// minStagnantHistory is how many boards must be recorded before stagnation is reported
const minStagnantHistory = 3

// History stores recent board hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size boards, never fewer than three
func NewHistory(size int) *History {
	return &History{size: max(size, minStagnantHistory)}
}

// Record adds a board to the history and maintains its size
func (h *History) Record(b Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if b repeats one of the last three recorded boards,
// which catches still lifes and period 2 and 3 oscillators
func (h *History) IsStagnant(b Board) bool {
	if len(h.hashes) < minStagnantHistory {
		return false
	}

	current := b.Hash()
	for i := 1; i <= minStagnantHistory; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded boards
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear drops every recorded board
func (h *History) Clear() {
	h.hashes = nil
}
