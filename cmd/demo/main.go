// Command demo is a terminal harness for the gonhanh engine: it renders a
// single editable line and feeds every keystroke through Engine.ProcessKey,
// so the composition logic can be exercised without Fcitx5 or D-Bus. An
// addition beyond the spec's D-Bus host, grounded on the terminal-UI
// library used elsewhere in the retrieval pack.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/username/gonhanh/internal/engine"
	"github.com/username/gonhanh/internal/shortcut"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start terminal:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init terminal:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	method := engine.MethodTelex
	eng := engine.New(method, engine.DefaultOptions(), shortcut.WithDefaults(), nil)

	var line []rune
	style := tcell.StyleDefault

	redraw := func() {
		screen.Clear()
		drawString(screen, 0, 0, style, "gonhanh demo - Telex/VNI - F2 toggles method, Esc quits")
		drawString(screen, 0, 2, style, string(line))
		screen.ShowCursor(len(line), 2)
		screen.Show()
	}
	redraw()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyF2:
				if method == engine.MethodTelex {
					method = engine.MethodVNI
				} else {
					method = engine.MethodTelex
				}
				eng.SetMethod(method)
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				cmd := eng.ProcessKey(engine.KeyDelete, false, false)
				if cmd.Action == engine.ActionNone {
					if len(line) > 0 {
						line = line[:len(line)-1]
					}
				} else {
					line = applyCommand(line, cmd)
				}
			case tcell.KeyEnter:
				cmd := eng.ProcessKey(engine.KeyReturn, false, false)
				if cmd.Action == engine.ActionNone {
					line = append(line, '\n')
				} else {
					line = applyCommand(line, cmd)
				}
			case tcell.KeyRune:
				r := ev.Rune()
				key, caps := runeToKey(r)
				cmd := eng.ProcessKey(key, caps, ev.Modifiers()&tcell.ModCtrl != 0)
				if cmd.Action == engine.ActionNone {
					line = append(line, r)
				} else {
					line = applyCommand(line, cmd)
				}
			}
			redraw()
		}
	}
}

// applyCommand mutates line according to cmd, which always refers to the
// tail of the currently displayed text (the in-progress word).
func applyCommand(line []rune, cmd engine.EditCommand) []rune {
	if cmd.Action == engine.ActionNone {
		return line
	}
	n := len(line) - int(cmd.Backspace)
	if n < 0 {
		n = 0
	}
	line = line[:n]
	return append(line, cmd.Chars[:cmd.Count]...)
}

func runeToKey(r rune) (engine.KeyCode, bool) {
	if r >= 'A' && r <= 'Z' {
		return engine.KeyCode(r + ('a' - 'A')), true
	}
	return engine.KeyCode(r), false
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
