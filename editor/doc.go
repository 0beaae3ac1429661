// Package editor provides a Bubble Tea component that hosts an engine.Editor.
//
// The component translates key and mouse messages into engine input, renders
// the engine snapshot with lipgloss (cursor, selection, search matches and
// optional syntax highlighting) and scrolls a viewport to the engine's scroll
// hint. Modal editing itself lives entirely in the engine.
package editor
