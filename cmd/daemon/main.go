package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/username/gonhanh/internal/config"
	"github.com/username/gonhanh/internal/engine"
	"github.com/username/gonhanh/internal/shortcut"
)

const (
	serviceName = "com.github.gonhanh.ime"
	objectPath  = "/Engine"
)

// X11 keysyms for the handful of non-printable keys Fcitx5 forwards us.
const (
	xkBackSpace  = 0xff08
	xkTab        = 0xff09
	xkReturn     = 0xff0d
	xkEscape     = 0xff1b
	xkDelete     = 0xffff
	xkLeft       = 0xff51
	xkUp         = 0xff52
	xkRight      = 0xff53
	xkDown       = 0xff54
	shiftMask    = 1 << 0
	lockMask     = 1 << 1
	controlMask  = 1 << 2
)

// translateKeysym converts an X11 keysym into this engine's KeyCode
// namespace, reporting whether the letter should be typed upper-case.
// Grounded on the teacher's KeysymToRune helper in the old engine
// package, restated against engine.KeyCode.
func translateKeysym(keysym uint32, modifiers uint32) (engine.KeyCode, bool, bool) {
	ctrl := modifiers&controlMask != 0
	switch keysym {
	case xkBackSpace:
		return engine.KeyDelete, false, ctrl
	case xkTab:
		return engine.KeyTab, false, ctrl
	case xkReturn:
		return engine.KeyReturn, false, ctrl
	case xkEscape:
		return engine.KeyEscape, false, ctrl
	case xkDelete:
		return engine.KeyOther, false, ctrl
	case xkLeft:
		return engine.KeyArrowLeft, false, ctrl
	case xkRight:
		return engine.KeyArrowRight, false, ctrl
	case xkUp:
		return engine.KeyArrowUp, false, ctrl
	case xkDown:
		return engine.KeyArrowDown, false, ctrl
	}
	if keysym >= 'a' && keysym <= 'z' {
		caps := modifiers&shiftMask != 0 || modifiers&lockMask != 0
		return engine.KeyCode(keysym), caps, ctrl
	}
	if keysym >= 'A' && keysym <= 'Z' {
		return engine.KeyCode(keysym + ('a' - 'A')), true, ctrl
	}
	if keysym >= '0' && keysym <= '9' {
		return engine.KeyCode(keysym), false, ctrl
	}
	if keysym >= 0x20 && keysym <= 0x7e {
		return engine.KeyCode(keysym), false, ctrl
	}
	return engine.KeyOther, false, ctrl
}

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	engine *engine.Engine
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine from the persisted configuration.
func NewInputEngine(logger *log.Logger) *InputEngine {
	cfg := config.Load()
	method := engine.MethodTelex
	if cfg.Method == config.MethodVNI {
		method = engine.MethodVNI
	}
	opts := engine.Options{
		Modern:                cfg.ToneRule == config.ToneRuleModern,
		EnableValidation:      cfg.EnableValidation,
		EnableAutoRestore:     cfg.EnableAutoRestore,
		EnableDoubleKeyRevert: cfg.EnableDoubleKeyRevert,
		EnableAutoCapitalize:  cfg.EnableAutoCapitalize,
		EnableWAsVowel:        cfg.EnableWAsVowel,
		Enabled:               cfg.Enabled,
	}
	return &InputEngine{
		engine: engine.New(method, opts, shortcut.WithDefaults(), nil),
		logger: logger,
	}
}

// ProcessKey handles key events from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state)
// Output: handled (was the key consumed), backspace (chars to delete),
// insert (chars to type in their place)
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, uint8, string, *dbus.Error) {
	key, caps, ctrl := translateKeysym(keysym, modifiers)
	cmd := e.engine.ProcessKey(key, caps, ctrl)

	if e.logger != nil {
		e.logger.Printf("keysym=0x%x mods=0x%x -> action=%d backspace=%d insert=%q preedit=%q",
			keysym, modifiers, cmd.Action, cmd.Backspace, cmd.String(), e.engine.Preedit())
	}

	return cmd.Action != engine.ActionNone, cmd.Backspace, cmd.String(), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Reset()
	fmt.Println(">>> [gonhanh] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	fmt.Printf(">>> [gonhanh] Engine enabled: %v\n", enabled)
	return nil
}

// SetModernPlacement toggles modern vs traditional diacritic placement.
func (e *InputEngine) SetModernPlacement(modern bool) *dbus.Error {
	e.engine.SetModernPlacement(modern)
	fmt.Printf(">>> [gonhanh] Modern placement: %v\n", modern)
	return nil
}

// SetAutoCapitalize toggles auto-capitalisation after sentence-enders.
func (e *InputEngine) SetAutoCapitalize(enabled bool) *dbus.Error {
	e.engine.SetAutoCapitalize(enabled)
	fmt.Printf(">>> [gonhanh] Auto-capitalize: %v\n", enabled)
	return nil
}

// SetEnglishAutoRestore toggles rollback of non-Vietnamese words at a word
// boundary.
func (e *InputEngine) SetEnglishAutoRestore(enabled bool) *dbus.Error {
	e.engine.SetEnglishAutoRestore(enabled)
	fmt.Printf(">>> [gonhanh] English auto-restore: %v\n", enabled)
	return nil
}

// AddShortcut registers or replaces an abbreviation-expansion entry. When
// immediate is true the expansion fires as soon as the trigger text is
// typed, with no word-boundary key needed.
func (e *InputEngine) AddShortcut(trigger, expansion string, immediate bool) *dbus.Error {
	s := shortcut.New(trigger, expansion)
	if immediate {
		s = shortcut.NewImmediate(trigger, expansion)
	}
	e.engine.AddShortcut(s)
	fmt.Printf(">>> [gonhanh] Shortcut added: %q -> %q\n", trigger, expansion)
	return nil
}

// RemoveShortcut deletes a shortcut by its trigger text.
func (e *InputEngine) RemoveShortcut(trigger string) *dbus.Error {
	e.engine.RemoveShortcut(trigger)
	fmt.Printf(">>> [gonhanh] Shortcut removed: %q\n", trigger)
	return nil
}

// ClearShortcuts removes every registered shortcut.
func (e *InputEngine) ClearShortcuts() *dbus.Error {
	e.engine.ClearShortcuts()
	fmt.Println(">>> [gonhanh] Shortcuts cleared")
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.Preedit(), nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [gonhanh] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [gonhanh] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	inputEngine := NewInputEngine(logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("gonhanh backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [gonhanh] Shutting down...")
}
