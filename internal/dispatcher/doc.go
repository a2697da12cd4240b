// Package dispatcher is the Command Dispatcher (CD): the single entry point
// that turns a toolkit-free EditorAction plus its parameters into mutations
// of the buffer, cursor, history, and search subsystems under one uniform
// validation, selection-policy, and redraw-signalling discipline.
//
// Every external stimulus a host translates into an (EditorAction,
// CommandParams) pair passes through Dispatcher.Execute. No other path
// mutates engine state, so undo/redo, selection-clearing, and redraw
// notification are applied consistently regardless of where the action
// originated.
package dispatcher
