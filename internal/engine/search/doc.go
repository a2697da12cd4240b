// Package search implements Search (SR): buffer-wide find and replace,
// addressed in Text Model positions. Find operations are pure queries;
// replace operations mutate the buffer and are undo-eligible like any other
// edit, so callers push a history snapshot before invoking them.
package search
