package vim

import (
	"github.com/iw2rmb/vimkit/input"
	"github.com/iw2rmb/vimkit/motion"
)

// outcome says how a handler consumed a key.
type outcome int

const (
	// emit: the command is complete; the returned Action runs and the pending
	// state clears.
	emit outcome = iota
	// wait: the returned Pending needs more keys.
	wait
	// reject: the key does not continue the pending state.
	reject
)

type handler func(p Pending, k input.Key) (Pending, Action, outcome)

// tables maps (mode, key name) to a handler. Keys absent from a mode's table
// fall through to fallbacks[mode], then are rejected.
var (
	tables    [modeCount]map[string]handler
	fallbacks [modeCount]handler
)

func init() {
	normal := map[string]handler{}
	visual := map[string]handler{}
	for name, kind := range motionKeys {
		normal[name] = moveHandler(kind)
		visual[name] = moveHandler(kind)
	}
	normal["g"] = gPrefix
	visual["g"] = gPrefix

	normal["d"] = operatorHandler(OpDelete)
	normal["c"] = operatorHandler(OpChange)
	normal["y"] = operatorHandler(OpYank)
	normal["i"] = insertOrObject(InsertBefore, false)
	normal["a"] = insertOrObject(InsertAfter, true)

	normal["x"] = command(func(p Pending) Action {
		return Action{Kind: ActOperate, Operator: OpDelete, Count: p.times(), Motion: motion.Motion{Kind: motion.Right, Count: p.times()}}
	})
	normal["delete"] = normal["x"]
	normal["D"] = command(func(p Pending) Action {
		return Action{Kind: ActOperate, Operator: OpDelete, Count: p.times(), Motion: motion.Motion{Kind: motion.LineEnd, Count: p.times()}}
	})
	normal["C"] = command(func(p Pending) Action {
		return Action{Kind: ActOperate, Operator: OpChange, Count: p.times(), Motion: motion.Motion{Kind: motion.LineEnd, Count: p.times()}}
	})
	normal["Y"] = command(func(p Pending) Action {
		return Action{Kind: ActOperate, Operator: OpYank, Count: p.times(), Linewise: true}
	})
	normal["J"] = command(func(p Pending) Action { return Action{Kind: ActJoin, Count: p.times()} })
	normal["p"] = command(func(p Pending) Action { return Action{Kind: ActPaste, Count: p.times()} })
	normal["P"] = command(func(p Pending) Action { return Action{Kind: ActPaste, Count: p.times(), Before: true} })
	normal["u"] = command(func(p Pending) Action { return Action{Kind: ActUndo, Count: p.times()} })
	normal["ctrl+r"] = command(func(p Pending) Action { return Action{Kind: ActRedo, Count: p.times()} })
	normal["A"] = insertAt(InsertLineEnd)
	normal["I"] = insertAt(InsertLineStart)
	normal["o"] = insertAt(OpenBelow)
	normal["O"] = insertAt(OpenAbove)
	normal["v"] = setMode(Visual)
	normal["V"] = setMode(VisualLine)
	normal["/"] = command(func(Pending) Action { return Action{Kind: ActSearchStart, Count: 1} })
	normal["n"] = command(func(p Pending) Action { return Action{Kind: ActSearchNext, Count: p.times()} })
	normal["N"] = command(func(p Pending) Action { return Action{Kind: ActSearchPrev, Count: p.times()} })
	normal["esc"] = command(func(Pending) Action { return Action{Kind: ActNone} })

	visual["d"] = visualOperator(OpDelete)
	visual["x"] = visual["d"]
	visual["delete"] = visual["d"]
	visual["c"] = visualOperator(OpChange)
	visual["s"] = visual["c"]
	visual["y"] = visualOperator(OpYank)
	visual["p"] = command(func(p Pending) Action { return Action{Kind: ActVisualPaste, Count: 1} })
	visual["P"] = visual["p"]
	visual["i"] = objectPrefix(false)
	visual["a"] = objectPrefix(true)
	visual["esc"] = setMode(Normal)

	visualLine := make(map[string]handler, len(visual))
	for k, h := range visual {
		visualLine[k] = h
	}
	visual["v"] = setMode(Normal)
	visual["V"] = setMode(VisualLine)
	visualLine["v"] = setMode(Visual)
	visualLine["V"] = setMode(Normal)

	insert := map[string]handler{
		"esc":       command(func(Pending) Action { return Action{Kind: ActSetMode, Mode: Normal, Count: 1} }),
		"enter":     command(func(Pending) Action { return Action{Kind: ActInsertText, Text: "\n", Count: 1} }),
		"tab":       command(func(Pending) Action { return Action{Kind: ActInsertText, Text: "\t", Count: 1} }),
		"backspace": command(func(Pending) Action { return Action{Kind: ActBackspace, Count: 1} }),
		"delete":    command(func(Pending) Action { return Action{Kind: ActDeleteForward, Count: 1} }),
	}
	for name, kind := range insertMotionKeys {
		insert[name] = command(func(Pending) Action {
			return Action{Kind: ActMove, Count: 1, Motion: motion.Motion{Kind: kind, Count: 1}}
		})
	}

	search := map[string]handler{
		"esc":       command(func(Pending) Action { return Action{Kind: ActSearchCancel, Count: 1} }),
		"enter":     command(func(Pending) Action { return Action{Kind: ActSearchCommit, Count: 1} }),
		"backspace": command(func(Pending) Action { return Action{Kind: ActSearchBackspace, Count: 1} }),
	}

	tables[Normal] = normal
	tables[Visual] = visual
	tables[VisualLine] = visualLine
	tables[Insert] = insert
	tables[Search] = search
	fallbacks[Insert] = typeText(ActInsertText)
	fallbacks[Search] = typeText(ActSearchInput)
}

var motionKeys = map[string]motion.Kind{
	"h":      motion.Left,
	"left":   motion.Left,
	"l":      motion.Right,
	"right":  motion.Right,
	"j":      motion.Down,
	"down":   motion.Down,
	"k":      motion.Up,
	"up":     motion.Up,
	"w":      motion.WordForward,
	"e":      motion.WordEnd,
	"b":      motion.WordBackward,
	"0":      motion.LineStart,
	"home":   motion.LineStart,
	"^":      motion.FirstNonBlank,
	"_":      motion.FirstNonBlank,
	"$":      motion.LineEnd,
	"end":    motion.LineEnd,
	"G":      motion.DocEnd,
	"%":      motion.MatchBracket,
	"ctrl+d": motion.HalfPageDown,
	"pgdown": motion.HalfPageDown,
	"ctrl+u": motion.HalfPageUp,
	"pgup":   motion.HalfPageUp,
}

var insertMotionKeys = map[string]motion.Kind{
	"left":   motion.Left,
	"right":  motion.Right,
	"up":     motion.Up,
	"down":   motion.Down,
	"home":   motion.LineStart,
	"end":    motion.LineEnd,
	"pgdown": motion.HalfPageDown,
	"pgup":   motion.HalfPageUp,
}

func command(fn func(p Pending) Action) handler {
	return func(p Pending, _ input.Key) (Pending, Action, outcome) {
		if p.Kind == PendingOperator {
			return p, Action{}, reject
		}
		return Pending{}, fn(p), emit
	}
}

// motionAction turns a motion key into a move, or into an operation when an
// operator is pending. The count passed to the motion is 0 when none was
// typed so `G` can tell "no count" from "1".
func motionAction(p Pending, kind motion.Kind) Action {
	m := motion.Motion{Kind: kind, Count: p.total()}
	if p.Kind == PendingOperator {
		return Action{Kind: ActOperate, Operator: p.Operator, Motion: m, Count: p.times()}
	}
	return Action{Kind: ActMove, Motion: m, Count: p.times()}
}

func moveHandler(kind motion.Kind) handler {
	return func(p Pending, _ input.Key) (Pending, Action, outcome) {
		return Pending{}, motionAction(p, kind), emit
	}
}

func gPrefix(p Pending, _ input.Key) (Pending, Action, outcome) {
	p.G = true
	return p, Action{}, wait
}

func operatorHandler(op Operator) handler {
	return func(p Pending, _ input.Key) (Pending, Action, outcome) {
		switch {
		case p.Kind == PendingOperator && p.Operator == op:
			return Pending{}, Action{Kind: ActOperate, Operator: op, Linewise: true, Count: p.times()}, emit
		case p.Kind == PendingOperator:
			return p, Action{}, reject
		}
		return Pending{Kind: PendingOperator, Operator: op, Count: p.Count}, Action{}, wait
	}
}

func insertAt(where InsertAt) handler {
	return command(func(p Pending) Action {
		return Action{Kind: ActInsert, Where: where, Count: 1}
	})
}

// insertOrObject is `i`/`a` in Normal mode: a text-object scope while an
// operator is pending, otherwise an insert command.
func insertOrObject(where InsertAt, around bool) handler {
	ins := insertAt(where)
	return func(p Pending, k input.Key) (Pending, Action, outcome) {
		if p.Kind == PendingOperator {
			p.Kind = PendingTextObject
			p.Around = around
			return p, Action{}, wait
		}
		return ins(p, k)
	}
}

func objectPrefix(around bool) handler {
	return func(p Pending, _ input.Key) (Pending, Action, outcome) {
		return Pending{Kind: PendingTextObject, Count: p.Count, Around: around}, Action{}, wait
	}
}

func setMode(m Mode) handler {
	return command(func(Pending) Action { return Action{Kind: ActSetMode, Mode: m, Count: 1} })
}

func visualOperator(op Operator) handler {
	return command(func(p Pending) Action {
		return Action{Kind: ActVisualOperate, Operator: op, Count: 1}
	})
}

func typeText(kind ActionKind) handler {
	return func(p Pending, k input.Key) (Pending, Action, outcome) {
		r, ok := k.Char()
		if !ok {
			return p, Action{}, reject
		}
		return Pending{}, Action{Kind: kind, Text: string(r), Count: 1}, emit
	}
}
