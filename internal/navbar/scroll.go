package navbar

// PinThreshold is the scroll offset past which the header is pinned.
const PinThreshold = 20

// ScrollHeader tracks whether the header is pinned to the top of the
// viewport. Each sample replaces the previous one.
type ScrollHeader struct {
	pinned bool
}

// Sample records the current scroll offset and returns the pinned flag.
func (s *ScrollHeader) Sample(offset int) bool {
	s.pinned = offset > PinThreshold
	return s.pinned
}

func (s *ScrollHeader) IsPinned() bool { return s.pinned }
