package cbor

// mode names a position in the parse-state stack (spec §3/§4.4). The
// stack bottom is always root; every container push adds exactly one
// frame, popped on the matching end.
type mode uint8

const (
	modeRoot mode = iota
	modeBeforeDone
	modeArray
	modeIndefiniteArray
	modeMapKey
	modeMapValue
	modeIndefiniteMapKey
	modeIndefiniteMapValue
	modeMultiDim
)

// frame is one entry of the parse-state stack. length and index apply to
// definite-length containers (a multi-dim frame also uses index as its
// step counter); indefinite containers track completion via the break
// byte instead.
type frame struct {
	mode mode

	length uint64 // declared element count, definite containers only
	index  uint64 // elements consumed so far

	// popStringrefOnExit is set when this frame's container opened a new
	// stringref namespace (tag 256) that must be popped off the
	// dictionary stack when the container closes (spec §4.6).
	popStringrefOnExit bool

	// multi-dim bookkeeping: shape is the declared extent per axis and
	// colMajor the tag's ordering (spec §4.9). remaining is not set by
	// the parser and stays zero.
	shape     []uint64
	remaining uint64
	colMajor  bool
}

// stateStack is a growable LIFO of frames. The zero value is usable.
type stateStack struct {
	frames []frame
}

func (s *stateStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *stateStack) pop() frame {
	n := len(s.frames)
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f
}

func (s *stateStack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *stateStack) depth() int {
	return len(s.frames)
}
