// Package main is a minimal interactive host exercising textkit end to
// end: it owns a tcell screen, translates key events into EditorAction
// commands, and redraws from the engine's current state whenever the
// wired RedrawSink reports a change.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textkit"
	"github.com/dshills/textkit/internal/adapter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "textkitdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("file", "", "file to open on start")
	flag.Parse()

	fileio := adapter.NewOSFileIO()
	content := ""
	if *path != "" {
		if c, err := fileio.ReadFile(*path); err == nil {
			content = c
		}
	}

	sink := adapter.NewChannelRedrawSink(8)
	engine := textkit.NewFromString(content,
		textkit.WithFileIO(fileio),
		textkit.WithClipboard(adapter.NewSystemClipboard()),
		textkit.WithRedrawSink(sink),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	draw(screen, engine)

	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, nil)

	for {
		select {
		case <-sink.Events():
			drainRedraws(sink)
			draw(screen, engine)

		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, engine)

			case *tcell.EventKey:
				action, params, quit, ok := translateKey(e)
				if quit {
					return nil
				}
				if !ok {
					continue
				}
				if err := engine.Execute(action, params); err != nil {
					// A failed command leaves state unchanged; the demo
					// simply ignores it rather than surfacing a modal.
					continue
				}
				draw(screen, engine)
			}
		}
	}
}

// drainRedraws collapses any further pending notifications so a burst of
// key events produces one redraw, not one per event.
func drainRedraws(sink *adapter.ChannelRedrawSink) {
	for {
		select {
		case <-sink.Events():
		default:
			return
		}
	}
}

func translateKey(e *tcell.EventKey) (action textkit.EditorAction, params textkit.CommandParams, quit bool, ok bool) {
	if e.Key() == tcell.KeyCtrlQ {
		return 0, textkit.NoParams(), true, false
	}
	if e.Key() == tcell.KeyCtrlZ {
		return textkit.Undo, textkit.NoParams(), false, true
	}
	if e.Key() == tcell.KeyCtrlY {
		return textkit.Redo, textkit.NoParams(), false, true
	}

	mods := e.Modifiers()
	shift := mods&tcell.ModShift != 0
	ctrl := mods&tcell.ModCtrl != 0

	switch e.Key() {
	case tcell.KeyLeft:
		if ctrl && shift {
			return textkit.SelectWordLeft, textkit.NoParams(), false, true
		}
		if ctrl {
			return textkit.MoveWordLeft, textkit.NoParams(), false, true
		}
		if shift {
			return textkit.SelectLeft, textkit.NoParams(), false, true
		}
		return textkit.MoveLeft, textkit.NoParams(), false, true

	case tcell.KeyRight:
		if ctrl && shift {
			return textkit.SelectWordRight, textkit.NoParams(), false, true
		}
		if ctrl {
			return textkit.MoveWordRight, textkit.NoParams(), false, true
		}
		if shift {
			return textkit.SelectRight, textkit.NoParams(), false, true
		}
		return textkit.MoveRight, textkit.NoParams(), false, true

	case tcell.KeyUp:
		if shift {
			return textkit.SelectUp, textkit.NoParams(), false, true
		}
		return textkit.MoveUp, textkit.NoParams(), false, true

	case tcell.KeyDown:
		if shift {
			return textkit.SelectDown, textkit.NoParams(), false, true
		}
		return textkit.MoveDown, textkit.NoParams(), false, true

	case tcell.KeyHome:
		return textkit.MoveHome, textkit.NoParams(), false, true
	case tcell.KeyEnd:
		return textkit.MoveEnd, textkit.NoParams(), false, true
	case tcell.KeyPgUp:
		return textkit.MovePageUp, textkit.NoParams(), false, true
	case tcell.KeyPgDn:
		return textkit.MovePageDown, textkit.NoParams(), false, true

	case tcell.KeyEnter:
		return textkit.InsertNewline, textkit.NoParams(), false, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return textkit.Backspace, textkit.NoParams(), false, true
	case tcell.KeyDelete:
		return textkit.Delete, textkit.NoParams(), false, true
	case tcell.KeyTab:
		return textkit.Indent, textkit.NoParams(), false, true

	case tcell.KeyCtrlA:
		return textkit.SelectAll, textkit.NoParams(), false, true
	case tcell.KeyCtrlC:
		return textkit.Copy, textkit.NoParams(), false, true
	case tcell.KeyCtrlX:
		return textkit.Cut, textkit.NoParams(), false, true
	case tcell.KeyCtrlV:
		return textkit.Paste, textkit.NoParams(), false, true
	case tcell.KeyCtrlD:
		return textkit.DuplicateLine, textkit.NoParams(), false, true

	case tcell.KeyRune:
		return textkit.InsertText, textkit.TextParams(string(e.Rune())), false, true
	}

	return 0, textkit.NoParams(), false, false
}

func draw(screen tcell.Screen, engine *textkit.Engine) {
	screen.Clear()
	width, height := screen.Size()

	cursor := engine.Cursor()
	sel := engine.Selection()

	for row := uint32(0); row < engine.LineCount() && int(row) < height; row++ {
		line := engine.LineText(row)
		shaped := engine.ShapeLine(line)
		runes := []rune(line)
		for col, r := range runes {
			style := tcell.StyleDefault
			pos := textkit.Position{Row: row, Col: uint32(col)}
			if sel.Contains(pos) {
				style = style.Reverse(true)
			}
			vc := int(shaped.VisualColumn(uint32(col)))
			if vc < width {
				screen.SetContent(vc, int(row), r, nil, style)
			}
		}
	}

	shapedCursorLine := engine.ShapeLine(engine.LineText(cursor.Row))
	screen.ShowCursor(int(shapedCursorLine.VisualColumn(cursor.Col)), int(cursor.Row))
	screen.Show()
}
