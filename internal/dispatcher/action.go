package dispatcher

// EditorAction is a semantic, toolkit-free editor verb. Hosts translate
// keypresses, mouse clicks, and menu selections into an EditorAction plus a
// CommandParams value and submit the pair to Dispatcher.Execute; the
// dispatcher never knows which physical input produced the action.
type EditorAction int

const (
	actionUnspecified EditorAction = iota

	// Navigation.
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveHome
	MoveEnd
	MoveDocumentStart
	MoveDocumentEnd
	MovePageUp
	MovePageDown
	MoveWordLeft
	MoveWordRight

	// Visual motion (bidi-aware, requires a Shaper; see SetShaper).
	VisualLeft
	VisualRight
	VisualUp
	VisualDown

	// Selection.
	SelectLeft
	SelectRight
	SelectUp
	SelectDown
	SelectWordLeft
	SelectWordRight
	SelectAll
	ClearSelection

	// Editing.
	InsertText
	InsertNewline
	Backspace
	Delete
	Indent
	Unindent
	DuplicateLine
	DeleteLine

	// Clipboard.
	Copy
	Cut
	Paste

	// History.
	Undo
	Redo

	// File.
	OpenFile
	SaveFile
	SaveAs
	NewFile

	// Search.
	FindNext
	FindPrev
	Replace
	ReplaceAll

	// Multi-cursor.
	AddCursor
)

var actionNames = map[EditorAction]string{
	MoveLeft:           "MoveLeft",
	MoveRight:          "MoveRight",
	MoveUp:             "MoveUp",
	MoveDown:           "MoveDown",
	MoveHome:           "MoveHome",
	MoveEnd:            "MoveEnd",
	MoveDocumentStart:  "MoveDocumentStart",
	MoveDocumentEnd:    "MoveDocumentEnd",
	MovePageUp:         "MovePageUp",
	MovePageDown:       "MovePageDown",
	MoveWordLeft:       "MoveWordLeft",
	MoveWordRight:      "MoveWordRight",
	VisualLeft:         "VisualLeft",
	VisualRight:        "VisualRight",
	VisualUp:           "VisualUp",
	VisualDown:         "VisualDown",
	SelectLeft:         "SelectLeft",
	SelectRight:        "SelectRight",
	SelectUp:           "SelectUp",
	SelectDown:         "SelectDown",
	SelectWordLeft:     "SelectWordLeft",
	SelectWordRight:    "SelectWordRight",
	SelectAll:          "SelectAll",
	ClearSelection:     "ClearSelection",
	InsertText:         "InsertText",
	InsertNewline:      "InsertNewline",
	Backspace:          "Backspace",
	Delete:             "Delete",
	Indent:             "Indent",
	Unindent:           "Unindent",
	DuplicateLine:      "DuplicateLine",
	DeleteLine:         "DeleteLine",
	Copy:               "Copy",
	Cut:                "Cut",
	Paste:              "Paste",
	Undo:               "Undo",
	Redo:               "Redo",
	OpenFile:           "OpenFile",
	SaveFile:           "SaveFile",
	SaveAs:             "SaveAs",
	NewFile:            "NewFile",
	FindNext:           "FindNext",
	FindPrev:           "FindPrev",
	Replace:            "Replace",
	ReplaceAll:         "ReplaceAll",
	AddCursor:          "AddCursor",
}

// String renders the action's name for logging and the command history.
func (a EditorAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unspecified"
}

// ParamsKind tags which field of CommandParams is populated. The dispatcher
// validates this against the action before executing, mirroring the Rust
// original's per-variant match on CommandParams.
type ParamsKind int

const (
	ParamsNone ParamsKind = iota
	ParamsPageLines
	ParamsText
	ParamsPosition
	ParamsFilePath
	ParamsQuery
	ParamsReplace
)

// CommandParams is the tagged union of extra data an EditorAction may need.
// Only the field matching Kind is meaningful; the zero value is ParamsNone.
type CommandParams struct {
	Kind      ParamsKind
	PageLines uint32
	Text      string
	Row       uint32
	Col       uint32
	FilePath  string
	Query     string
	Replace   string
}

// NoParams is the CommandParams value for actions that need no extra data.
func NoParams() CommandParams {
	return CommandParams{Kind: ParamsNone}
}

// PageLinesParams carries an explicit page size for MovePageUp/MovePageDown.
func PageLinesParams(n uint32) CommandParams {
	return CommandParams{Kind: ParamsPageLines, PageLines: n}
}

// TextParams carries free-form text for InsertText.
func TextParams(text string) CommandParams {
	return CommandParams{Kind: ParamsText, Text: text}
}

// PositionParams carries a row/column for AddCursor.
func PositionParams(row, col uint32) CommandParams {
	return CommandParams{Kind: ParamsPosition, Row: row, Col: col}
}

// FilePathParams carries a path for OpenFile/SaveFile/SaveAs.
func FilePathParams(path string) CommandParams {
	return CommandParams{Kind: ParamsFilePath, FilePath: path}
}

// QueryParams carries a search pattern for FindNext/FindPrev.
func QueryParams(query string) CommandParams {
	return CommandParams{Kind: ParamsQuery, Query: query}
}

// ReplaceParams carries a search pattern and its replacement for
// Replace/ReplaceAll.
func ReplaceParams(query, replacement string) CommandParams {
	return CommandParams{Kind: ParamsReplace, Query: query, Replace: replacement}
}
