// SPDX-License-Identifier: Unlicense OR MIT

// Package sdl implements platform.Backend on SDL2.
//
// SDL requires its event queue to be pumped from the main thread; this
// package locks the main goroutine to it.
package sdl

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"polltick.org/platform"
)

func init() {
	runtime.LockOSThread()
}

// Backend is an SDL2 backend.
type Backend struct {
	logger    *zap.Logger
	windows   map[platform.Window]*sdl.Window
	newWindow platform.Signal[platform.Window]
	quit      bool
}

var _ platform.Backend = (*Backend)(nil)

// New initializes the SDL video and event subsystems.
func New(logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}
	v := sdl.Version{}
	sdl.GetVersion(&v)
	logger = logger.Named("sdl")
	logger.Info("SDL initialized",
		zap.String("version", fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)))
	return &Backend{
		logger:  logger,
		windows: make(map[platform.Window]*sdl.Window),
	}, nil
}

// CreateWindow opens a resizable window and notifies NewWindow
// listeners.
func (b *Backend) CreateWindow(title string, width, height int) (platform.Window, error) {
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return platform.NoWindow, fmt.Errorf("sdl: create window: %w", err)
	}
	id, err := win.GetID()
	if err != nil {
		win.Destroy()
		return platform.NoWindow, fmt.Errorf("sdl: window id: %w", err)
	}
	w := platform.Window(id)
	b.windows[w] = win
	b.logger.Debug("window created", zap.Uint32("id", id), zap.Int("width", width), zap.Int("height", height))
	b.newWindow.Emit(w)
	return w, nil
}

// Closed reports whether SDL delivered a quit request.
func (b *Backend) Closed() bool {
	return b.quit
}

// Close destroys the windows and shuts SDL down.
func (b *Backend) Close() {
	for w, win := range b.windows {
		if err := win.Destroy(); err != nil {
			b.logger.Warn("destroying window", zap.Uint64("window", uint64(w)), zap.Error(err))
		}
		delete(b.windows, w)
	}
	sdl.Quit()
}

func (b *Backend) window(w platform.Window) *sdl.Window {
	if win, ok := b.windows[w]; ok {
		return win
	}
	// Windows created outside of this backend.
	win, err := sdl.GetWindowFromID(uint32(w))
	if err != nil {
		return nil
	}
	return win
}

func (b *Backend) Focused() platform.Window {
	win := sdl.GetKeyboardFocus()
	if win == nil {
		return platform.NoWindow
	}
	id, err := win.GetID()
	if err != nil {
		return platform.NoWindow
	}
	return platform.Window(id)
}

func (b *Backend) ClientSize(w platform.Window) (int, int, bool) {
	if w == platform.NoWindow {
		return 0, 0, false
	}
	win := b.window(w)
	if win == nil || win.GetFlags()&sdl.WINDOW_MINIMIZED != 0 {
		return 0, 0, false
	}
	width, height := win.GetSize()
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return int(width), int(height), true
}

func (b *Backend) NativeHandle(w platform.Window) uintptr {
	if w == platform.NoWindow {
		return 0
	}
	win := b.window(w)
	if win == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(win))
}

func (b *Backend) NewWindow() *platform.Signal[platform.Window] {
	return &b.newWindow
}

func (b *Backend) PollEvent() (platform.Event, bool) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return nil, false
		}
		if pe, ok := b.convert(e); ok {
			return pe, true
		}
	}
}

func (b *Backend) convert(e sdl.Event) (platform.Event, bool) {
	switch e := e.(type) {
	case *sdl.MouseMotionEvent:
		return platform.MouseMotionEvent{X: e.X, Y: e.Y}, true
	case *sdl.MouseButtonEvent:
		return platform.MouseButtonEvent{
			Button:  platform.MouseButton(e.Button),
			Pressed: e.State == sdl.PRESSED,
		}, true
	case *sdl.MouseWheelEvent:
		x, y := e.X, e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return platform.MouseWheelEvent{X: x, Y: y}, true
	case *sdl.TouchFingerEvent:
		var kind platform.FingerKind
		switch e.Type {
		case sdl.FINGERDOWN:
			kind = platform.FingerDown
		case sdl.FINGERUP:
			kind = platform.FingerUp
		case sdl.FINGERMOTION:
			kind = platform.FingerMotion
		default:
			return nil, false
		}
		return platform.FingerEvent{
			Kind:    kind,
			TouchID: platform.TouchID(e.TouchID),
			X:       e.X,
			Y:       e.Y,
		}, true
	case *sdl.MultiGestureEvent:
		return platform.MultiGestureEvent{
			TouchID: platform.TouchID(e.TouchID),
			DDist:   e.DDist,
		}, true
	case *sdl.QuitEvent:
		b.quit = true
	}
	return nil, false
}

func (b *Backend) HasFinger(id platform.TouchID, index int) bool {
	return sdl.GetTouchFinger(sdl.TouchID(id), index) != nil
}

func (b *Backend) KeyboardState() []uint8 {
	return sdl.GetKeyboardState()
}

// ScancodeName returns the name of the key at sc in the current
// keyboard layout.
func (b *Backend) ScancodeName(sc platform.Scancode) string {
	return sdl.GetKeyName(sdl.GetKeyFromScancode(sdl.Scancode(sc)))
}
