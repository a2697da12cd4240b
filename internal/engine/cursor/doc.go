// Package cursor implements Cursor & Selection (CS): the primary caret, its
// anchored selection, and the logical and visual motion primitives that act
// on them. All positions are expressed in the Text Model's grapheme-cluster
// columns; nothing in this package touches a byte offset directly.
package cursor
