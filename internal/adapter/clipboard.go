package adapter

import "github.com/atotto/clipboard"

// ClipboardAdapter is the External Adapter capability for cut/copy/paste.
// Implementations need not be OS-backed; a host embedding THE CORE without
// system clipboard access can supply an in-memory stub instead.
type ClipboardAdapter interface {
	SetText(text string) error
	Text() (string, error)
}

// SystemClipboard is the default ClipboardAdapter, backed by the host OS's
// clipboard via atotto/clipboard.
type SystemClipboard struct{}

// NewSystemClipboard creates a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// SetText writes text to the system clipboard.
func (SystemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// Text reads the current system clipboard contents.
func (SystemClipboard) Text() (string, error) {
	return clipboard.ReadAll()
}
