// Package textkit is a headless text-editor engine: a Text Model, Cursor &
// Selection, Undo/Redo, Search, and Layout Contract, unified behind a single
// Command Dispatcher entry point (Engine.Execute). It renders nothing and
// performs no I/O on its own; a host supplies a Shaper, RedrawSink,
// ClipboardAdapter, and FileIOAdapter and drives the engine one
// (EditorAction, CommandParams) command at a time.
//
// The engine is pinned to one goroutine conceptually: all TM/CS/UR state is
// touched only by the goroutine calling Execute. Other goroutines enqueue
// work through the channel returned by ChannelSender and the owning
// goroutine applies it by calling Drain.
package textkit
