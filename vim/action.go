package vim

import "github.com/iw2rmb/vimkit/motion"

// ActionKind selects what an Action does.
type ActionKind int

const (
	ActNone ActionKind = iota
	// ActMove moves the cursor by Motion (extends the selection in visual
	// modes).
	ActMove
	// ActOperate applies Operator to Motion, Object, or Count whole rows when
	// Linewise is set.
	ActOperate
	// ActPaste pastes the register Count times, Before or after the cursor.
	ActPaste
	ActJoin
	ActUndo
	ActRedo
	// ActInsert enters Insert mode at Where.
	ActInsert
	// ActSetMode switches to Mode: entering, switching or leaving the visual
	// modes, or leaving Insert mode.
	ActSetMode
	// ActVisualOperate applies Operator to the selection.
	ActVisualOperate
	// ActVisualPaste replaces the selection with the register.
	ActVisualPaste
	// ActVisualObject selects Object.
	ActVisualObject
	// ActInsertText inserts Text at the cursor; "\n" splits the row.
	ActInsertText
	ActBackspace
	ActDeleteForward
	ActSearchStart
	ActSearchInput
	ActSearchBackspace
	ActSearchCommit
	ActSearchCancel
	ActSearchNext
	ActSearchPrev
)

var actionNames = map[ActionKind]string{
	ActNone:            "none",
	ActMove:            "move",
	ActOperate:         "operate",
	ActPaste:           "paste",
	ActJoin:            "join",
	ActUndo:            "undo",
	ActRedo:            "redo",
	ActInsert:          "insert",
	ActSetMode:         "set-mode",
	ActVisualOperate:   "visual-operate",
	ActVisualPaste:     "visual-paste",
	ActVisualObject:    "visual-object",
	ActInsertText:      "insert-text",
	ActBackspace:       "backspace",
	ActDeleteForward:   "delete-forward",
	ActSearchStart:     "search-start",
	ActSearchInput:     "search-input",
	ActSearchBackspace: "search-backspace",
	ActSearchCommit:    "search-commit",
	ActSearchCancel:    "search-cancel",
	ActSearchNext:      "search-next",
	ActSearchPrev:      "search-prev",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// InsertAt says where Insert mode starts.
type InsertAt int

const (
	InsertBefore    InsertAt = iota // i
	InsertAfter                     // a
	InsertLineEnd                   // A
	InsertLineStart                 // I
	OpenBelow                       // o
	OpenAbove                       // O
)

// Action is one complete command produced by the interpreter.
type Action struct {
	Kind ActionKind
	// Count is the repeat count, at least 1.
	Count    int
	Motion   motion.Motion
	Operator Operator
	Linewise bool
	// Object is set (Delim non-empty) for text-object targets.
	Object motion.Object
	Where  InsertAt
	Mode   Mode
	Text   string
	Before bool
}
