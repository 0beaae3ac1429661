package vim

import (
	"strconv"
)

// Mode is the active editing mode. Exactly one is active at a time.
type Mode int

const (
	Normal Mode = iota
	Insert
	Visual
	VisualLine
	Search

	modeCount
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "VISUAL LINE"
	case Search:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// IsVisual reports whether m is one of the visual modes.
func (m Mode) IsVisual() bool { return m == Visual || m == VisualLine }

type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
)

func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "d"
	case OpChange:
		return "c"
	case OpYank:
		return "y"
	default:
		return ""
	}
}

// PendingKind tags the variant held by Pending.
type PendingKind int

const (
	PendingNone PendingKind = iota
	// PendingCount: digits were typed, no operator yet.
	PendingCount
	// PendingOperator: an operator awaits a motion, text object or repeat.
	PendingOperator
	// PendingTextObject: `i` or `a` awaits a delimiter key.
	PendingTextObject
)

func (k PendingKind) String() string {
	switch k {
	case PendingNone:
		return "none"
	case PendingCount:
		return "count"
	case PendingOperator:
		return "operator"
	case PendingTextObject:
		return "text-object"
	default:
		return "unknown"
	}
}

// Pending is the partially typed command of one mode.
type Pending struct {
	Kind PendingKind
	// Count is the count typed before the operator; 0 when none.
	Count int
	// MotionCount is the count typed after the operator; 0 when none.
	MotionCount int
	Operator    Operator
	// Around selects the `a` scope of a text object.
	Around bool
	// G is set after a `g` prefix.
	G bool
	// Keys is the typed sequence, for display.
	Keys string
}

// Idle reports whether nothing is pending.
func (p Pending) Idle() bool {
	return p.Kind == PendingNone && !p.G
}

// total combines both counts; 0 means no count was typed.
func (p Pending) total() int {
	switch {
	case p.Count == 0 && p.MotionCount == 0:
		return 0
	case p.Count == 0:
		return p.MotionCount
	case p.MotionCount == 0:
		return p.Count
	default:
		return p.Count * p.MotionCount
	}
}

func (p Pending) times() int {
	if n := p.total(); n > 0 {
		return n
	}
	return 1
}

// maxCount bounds accumulated counts so a long digit run cannot overflow.
const maxCount = 99999

func accumulate(n, d int) int {
	return min(n*10+d, maxCount)
}

func (p Pending) String() string {
	if p.Idle() {
		return "none"
	}
	return p.Kind.String() + " " + strconv.Quote(p.Keys)
}
