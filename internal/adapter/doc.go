// Package adapter provides default implementations of the External Adapter
// (EA) capabilities THE CORE depends on but does not implement itself:
// clipboard access, file I/O, monospace-terminal shaping, and a channel-
// backed redraw sink. A host is free to swap any of these for its own.
package adapter
