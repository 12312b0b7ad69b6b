// SPDX-License-Identifier: Unlicense OR MIT

// Package glfw implements platform.Backend on GLFW 3.3.
//
// GLFW delivers input through window callbacks; the backend queues them
// and PollEvent drains the queue, pumping GLFW once per drain. GLFW has
// no touch input.
package glfw

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"polltick.org/platform"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Backend is a GLFW backend.
type Backend struct {
	logger    *zap.Logger
	windows   map[platform.Window]*glfw.Window
	next      platform.Window
	queue     []platform.Event
	pumped    bool
	keys      [platform.NumScancodes]uint8
	newWindow platform.Signal[platform.Window]
}

var _ platform.Backend = (*Backend)(nil)

// New initializes GLFW.
func New(logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	logger = logger.Named("glfw")
	logger.Info("GLFW initialized", zap.String("version", glfw.GetVersionString()))
	return &Backend{
		logger:  logger,
		windows: make(map[platform.Window]*glfw.Window),
	}, nil
}

// CreateWindow opens a window and notifies NewWindow listeners.
func (b *Backend) CreateWindow(title string, width, height int) (platform.Window, error) {
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return platform.NoWindow, fmt.Errorf("glfw: create window: %w", err)
	}
	b.next++
	w := b.next
	b.windows[w] = win
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		b.queue = append(b.queue, platform.MouseMotionEvent{X: int32(x), Y: int32(y)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		mb, ok := mouseButtons[button]
		if !ok || action == glfw.Repeat {
			return
		}
		b.queue = append(b.queue, platform.MouseButtonEvent{Button: mb, Pressed: action == glfw.Press})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		b.queue = append(b.queue, platform.MouseWheelEvent{X: int32(xoff), Y: int32(yoff)})
	})
	b.logger.Debug("window created", zap.Uint64("window", uint64(w)), zap.Int("width", width), zap.Int("height", height))
	b.newWindow.Emit(w)
	return w, nil
}

// Closed reports whether every window has been asked to close.
func (b *Backend) Closed() bool {
	for _, win := range b.windows {
		if !win.ShouldClose() {
			return false
		}
	}
	return true
}

// Close destroys the windows and terminates GLFW.
func (b *Backend) Close() {
	for w, win := range b.windows {
		win.Destroy()
		delete(b.windows, w)
	}
	glfw.Terminate()
}

var mouseButtons = map[glfw.MouseButton]platform.MouseButton{
	glfw.MouseButtonLeft:   platform.MouseButtonLeft,
	glfw.MouseButtonRight:  platform.MouseButtonRight,
	glfw.MouseButtonMiddle: platform.MouseButtonMiddle,
	glfw.MouseButton4:      platform.MouseButtonX1,
	glfw.MouseButton5:      platform.MouseButtonX2,
}

func (b *Backend) Focused() platform.Window {
	for w, win := range b.windows {
		if win.GetAttrib(glfw.Focused) == glfw.True {
			return w
		}
	}
	return platform.NoWindow
}

func (b *Backend) ClientSize(w platform.Window) (int, int, bool) {
	win, ok := b.windows[w]
	if !ok || win.GetAttrib(glfw.Iconified) == glfw.True {
		return 0, 0, false
	}
	width, height := win.GetSize()
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func (b *Backend) NativeHandle(w platform.Window) uintptr {
	win, ok := b.windows[w]
	if !ok {
		return 0
	}
	return uintptr(unsafe.Pointer(win.Handle()))
}

func (b *Backend) NewWindow() *platform.Signal[platform.Window] {
	return &b.newWindow
}

func (b *Backend) PollEvent() (platform.Event, bool) {
	if len(b.queue) == 0 && !b.pumped {
		glfw.PollEvents()
		b.pumped = true
	}
	if len(b.queue) == 0 {
		// The next drain pumps again.
		b.pumped = false
		return nil, false
	}
	e := b.queue[0]
	b.queue = b.queue[1:]
	return e, true
}

// HasFinger always reports false; GLFW has no touch input.
func (b *Backend) HasFinger(platform.TouchID, int) bool {
	return false
}

// KeyboardState samples the focused window. Keys without a GLFW
// equivalent read as up.
func (b *Backend) KeyboardState() []uint8 {
	b.keys = [platform.NumScancodes]uint8{}
	win, ok := b.windows[b.Focused()]
	if !ok {
		return b.keys[:]
	}
	for sc, k := range glfwKeys {
		if win.GetKey(k) == glfw.Press {
			b.keys[sc] = 1
		}
	}
	return b.keys[:]
}

// ScancodeName returns GLFW's layout-specific name for sc. GLFW only
// names printable keys.
func (b *Backend) ScancodeName(sc platform.Scancode) string {
	k, ok := glfwKeys[sc]
	if !ok {
		return ""
	}
	return glfw.GetKeyName(k, 0)
}
