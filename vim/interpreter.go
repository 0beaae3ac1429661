// Package vim interprets key events as modal editing commands.
//
// Each mode owns an independent Pending state. Transition consumes one key and
// returns the next Pending state and at most one Action; it never touches the
// document. A key that does not continue the pending sequence cancels it and
// is then processed once more as a fresh key.
package vim

import (
	"github.com/iw2rmb/vimkit/input"
	"github.com/iw2rmb/vimkit/motion"
)

// Result is the outcome of one Transition.
type Result struct {
	Pending Pending
	Action  Action
	// Emitted is set when Action is a complete command to execute.
	Emitted bool
	// Cancelled is set when a pending sequence was discarded by this key.
	Cancelled bool
}

// Transition feeds k to mode with pending state p.
func Transition(mode Mode, p Pending, k input.Key) Result {
	if k.IsPaste() {
		switch mode {
		case Insert:
			return Result{Action: Action{Kind: ActInsertText, Text: k.Paste, Count: 1}, Emitted: true, Cancelled: !p.Idle()}
		case Search:
			return Result{Action: Action{Kind: ActSearchInput, Text: k.Paste, Count: 1}, Emitted: true, Cancelled: !p.Idle()}
		}
		return Result{Cancelled: !p.Idle()}
	}

	next, act, out := dispatch(mode, p, k)
	cancelled := false
	if out == reject && !p.Idle() {
		cancelled = true
		next, act, out = dispatch(mode, Pending{}, k)
	}

	switch out {
	case wait:
		next.Keys = p.Keys + keyLabel(k)
		if cancelled {
			next.Keys = keyLabel(k)
		}
		return Result{Pending: next, Cancelled: cancelled}
	case emit:
		if act.Count <= 0 {
			act.Count = 1
		}
		return Result{Action: act, Emitted: act.Kind != ActNone, Cancelled: cancelled}
	default:
		return Result{Cancelled: cancelled}
	}
}

func dispatch(mode Mode, p Pending, k input.Key) (Pending, Action, outcome) {
	if mode < 0 || mode >= modeCount {
		return Pending{}, Action{}, reject
	}
	name := k.String()

	if p.G {
		if name != "g" {
			return p, Action{}, reject
		}
		p.G = false
		return Pending{}, motionAction(p, motion.DocStart), emit
	}

	if p.Kind == PendingTextObject {
		r, ok := k.Char()
		if !ok || !motion.IsObjectKey(string(r)) {
			return p, Action{}, reject
		}
		obj := motion.Object{Delim: string(r), Around: p.Around}
		if p.Operator == OpNone {
			return Pending{}, Action{Kind: ActVisualObject, Object: obj, Count: p.times()}, emit
		}
		return Pending{}, Action{Kind: ActOperate, Operator: p.Operator, Object: obj, Count: p.times()}, emit
	}

	if mode != Insert && mode != Search {
		if d, ok := k.Digit(); ok {
			if next, ok := countDigit(p, d); ok {
				return next, Action{}, wait
			}
		}
	}

	if h, ok := tables[mode][name]; ok {
		return h(p, k)
	}
	if fb := fallbacks[mode]; fb != nil {
		return fb(p, k)
	}
	return p, Action{}, reject
}

// countDigit accumulates d into the count that is currently being typed.
// A leading 0 is not a count; it is the line-start motion.
func countDigit(p Pending, d int) (Pending, bool) {
	if p.Kind == PendingOperator {
		if d == 0 && p.MotionCount == 0 {
			return p, false
		}
		p.MotionCount = accumulate(p.MotionCount, d)
		return p, true
	}
	if d == 0 && p.Count == 0 {
		return p, false
	}
	p.Kind = PendingCount
	p.Count = accumulate(p.Count, d)
	return p, true
}

func keyLabel(k input.Key) string {
	if r, ok := k.Char(); ok {
		return string(r)
	}
	return "<" + k.String() + ">"
}

// Interpreter keeps the pending state of every mode.
type Interpreter struct {
	pending [modeCount]Pending
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Feed runs Transition for mode and stores the resulting pending state.
func (in *Interpreter) Feed(mode Mode, k input.Key) Result {
	if mode < 0 || mode >= modeCount {
		return Result{}
	}
	res := Transition(mode, in.pending[mode], k)
	in.pending[mode] = res.Pending
	return res
}

// Pending returns the pending state of mode.
func (in *Interpreter) Pending(mode Mode) Pending {
	if mode < 0 || mode >= modeCount {
		return Pending{}
	}
	return in.pending[mode]
}

// Reset clears the pending state of mode.
func (in *Interpreter) Reset(mode Mode) {
	if mode >= 0 && mode < modeCount {
		in.pending[mode] = Pending{}
	}
}
