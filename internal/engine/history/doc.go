// Package history implements Undo/Redo (UR): bounded stacks of whole-buffer
// snapshots. Each entry captures the buffer text and the cursor/selection
// state at the moment of the edit, so undo and redo restore the entire
// document rather than replaying or inverting an individual diff.
package history
