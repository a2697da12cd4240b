// Package buffer implements the Text Model: a line-oriented, grapheme-safe
// text store built on top of the rope package's immutable byte storage.
//
// Lines are addressed by 0-based row index. Columns are counted in extended
// grapheme clusters (user-perceived characters), not bytes or code points,
// so that emoji ZWJ sequences and combining marks behave as a single caret
// stop. Every column argument that crosses the package boundary is a
// grapheme-cluster index; conversion to byte offsets happens exclusively in
// grapheme.go, so no other file in the engine ever manipulates a byte index
// derived from user input directly.
package buffer
