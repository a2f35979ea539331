package points

import "github.com/ha1tch/nestdraw/internal/geom"

// NoSelection is the Selected value when no anchor is selected.
const NoSelection = -1

// Store owns the anchor points, the current selection and the nesting
// depth. The editing controller writes it; the renderer and the score
// read it.
type Store struct {
	points   []geom.Vec2
	selected int
	depth    int
}

func NewStore(depth int) *Store {
	if depth < 0 {
		depth = 0
	}
	return &Store{selected: NoSelection, depth: depth}
}

// Points returns the anchors in storage order. The slice is shared with
// the store and must not be modified by the caller.
func (s *Store) Points() []geom.Vec2 {
	return s.points
}

func (s *Store) Len() int {
	return len(s.points)
}

// Selected returns the selected index, or NoSelection.
func (s *Store) Selected() int {
	return s.selected
}

func (s *Store) Depth() int {
	return s.depth
}

func (s *Store) IncreaseDepth() {
	s.depth++
}

// DecreaseDepth lowers the depth, stopping at zero.
func (s *Store) DecreaseDepth() {
	if s.depth > 0 {
		s.depth--
	}
}

// Add appends an anchor, selects it and returns its index.
func (s *Store) Add(p geom.Vec2) int {
	s.points = append(s.points, p)
	s.selected = len(s.points) - 1
	return s.selected
}

func (s *Store) Select(i int) {
	if i < 0 || i >= len(s.points) {
		s.selected = NoSelection
		return
	}
	s.selected = i
}

func (s *Store) ClearSelection() {
	s.selected = NoSelection
}

// MoveSelected overwrites the selected anchor's position. It reports
// false when nothing is selected.
func (s *Store) MoveSelected(p geom.Vec2) bool {
	if s.selected == NoSelection {
		return false
	}
	s.points[s.selected] = p
	return true
}

// Remove deletes anchor i by moving the last anchor into its slot.
// Order of the remaining anchors is not preserved. The selection is
// cleared.
func (s *Store) Remove(i int) {
	if i < 0 || i >= len(s.points) {
		return
	}
	last := len(s.points) - 1
	s.points[i] = s.points[last]
	s.points = s.points[:last]
	s.selected = NoSelection
}

// HitTest returns the index of the first anchor, in storage order,
// within radius of p. Both p and radius are in normalized space.
func (s *Store) HitTest(p geom.Vec2, radius float32) (int, bool) {
	r2 := radius * radius
	for i, pt := range s.points {
		d := pt.Sub(p)
		if d.Dot(d) < r2 {
			return i, true
		}
	}
	return NoSelection, false
}
