package input

type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerDrag:
		return "drag"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Pointer is a pointer event on a terminal cell relative to the top-left of
// the editor's text area (after any gutter).
type Pointer struct {
	Kind PointerKind
	X    int
	Y    int
}
