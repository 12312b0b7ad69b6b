// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"polltick.org/platform"
)

var glfwKeys = map[platform.Scancode]glfw.Key{
	platform.ScancodeA: glfw.KeyA,
	platform.ScancodeB: glfw.KeyB,
	platform.ScancodeC: glfw.KeyC,
	platform.ScancodeD: glfw.KeyD,
	platform.ScancodeE: glfw.KeyE,
	platform.ScancodeF: glfw.KeyF,
	platform.ScancodeG: glfw.KeyG,
	platform.ScancodeH: glfw.KeyH,
	platform.ScancodeI: glfw.KeyI,
	platform.ScancodeJ: glfw.KeyJ,
	platform.ScancodeK: glfw.KeyK,
	platform.ScancodeL: glfw.KeyL,
	platform.ScancodeM: glfw.KeyM,
	platform.ScancodeN: glfw.KeyN,
	platform.ScancodeO: glfw.KeyO,
	platform.ScancodeP: glfw.KeyP,
	platform.ScancodeQ: glfw.KeyQ,
	platform.ScancodeR: glfw.KeyR,
	platform.ScancodeS: glfw.KeyS,
	platform.ScancodeT: glfw.KeyT,
	platform.ScancodeU: glfw.KeyU,
	platform.ScancodeV: glfw.KeyV,
	platform.ScancodeW: glfw.KeyW,
	platform.ScancodeX: glfw.KeyX,
	platform.ScancodeY: glfw.KeyY,
	platform.ScancodeZ: glfw.KeyZ,

	platform.Scancode0: glfw.Key0,
	platform.Scancode1: glfw.Key1,
	platform.Scancode2: glfw.Key2,
	platform.Scancode3: glfw.Key3,
	platform.Scancode4: glfw.Key4,
	platform.Scancode5: glfw.Key5,
	platform.Scancode6: glfw.Key6,
	platform.Scancode7: glfw.Key7,
	platform.Scancode8: glfw.Key8,
	platform.Scancode9: glfw.Key9,

	platform.ScancodeReturn:       glfw.KeyEnter,
	platform.ScancodeEscape:       glfw.KeyEscape,
	platform.ScancodeBackspace:    glfw.KeyBackspace,
	platform.ScancodeTab:          glfw.KeyTab,
	platform.ScancodeSpace:        glfw.KeySpace,
	platform.ScancodeMinus:        glfw.KeyMinus,
	platform.ScancodeEquals:       glfw.KeyEqual,
	platform.ScancodeLeftBracket:  glfw.KeyLeftBracket,
	platform.ScancodeRightBracket: glfw.KeyRightBracket,
	platform.ScancodeBackslash:    glfw.KeyBackslash,
	platform.ScancodeSemicolon:    glfw.KeySemicolon,
	platform.ScancodeApostrophe:   glfw.KeyApostrophe,
	platform.ScancodeGrave:        glfw.KeyGraveAccent,
	platform.ScancodeComma:        glfw.KeyComma,
	platform.ScancodePeriod:       glfw.KeyPeriod,
	platform.ScancodeSlash:        glfw.KeySlash,
	platform.ScancodeCapsLock:     glfw.KeyCapsLock,

	platform.ScancodeF1:  glfw.KeyF1,
	platform.ScancodeF2:  glfw.KeyF2,
	platform.ScancodeF3:  glfw.KeyF3,
	platform.ScancodeF4:  glfw.KeyF4,
	platform.ScancodeF5:  glfw.KeyF5,
	platform.ScancodeF6:  glfw.KeyF6,
	platform.ScancodeF7:  glfw.KeyF7,
	platform.ScancodeF8:  glfw.KeyF8,
	platform.ScancodeF9:  glfw.KeyF9,
	platform.ScancodeF10: glfw.KeyF10,
	platform.ScancodeF11: glfw.KeyF11,
	platform.ScancodeF12: glfw.KeyF12,

	platform.ScancodePrintScreen: glfw.KeyPrintScreen,
	platform.ScancodeScrollLock:  glfw.KeyScrollLock,
	platform.ScancodePause:       glfw.KeyPause,
	platform.ScancodeInsert:      glfw.KeyInsert,
	platform.ScancodeHome:        glfw.KeyHome,
	platform.ScancodePageUp:      glfw.KeyPageUp,
	platform.ScancodeDelete:      glfw.KeyDelete,
	platform.ScancodeEnd:         glfw.KeyEnd,
	platform.ScancodePageDown:    glfw.KeyPageDown,
	platform.ScancodeRight:       glfw.KeyRight,
	platform.ScancodeLeft:        glfw.KeyLeft,
	platform.ScancodeDown:        glfw.KeyDown,
	platform.ScancodeUp:          glfw.KeyUp,

	platform.ScancodeNumLockClear: glfw.KeyNumLock,
	platform.ScancodeKPDivide:     glfw.KeyKPDivide,
	platform.ScancodeKPMultiply:   glfw.KeyKPMultiply,
	platform.ScancodeKPMinus:      glfw.KeyKPSubtract,
	platform.ScancodeKPPlus:       glfw.KeyKPAdd,
	platform.ScancodeKPEnter:      glfw.KeyKPEnter,
	platform.ScancodeKP0:          glfw.KeyKP0,
	platform.ScancodeKP1:          glfw.KeyKP1,
	platform.ScancodeKP2:          glfw.KeyKP2,
	platform.ScancodeKP3:          glfw.KeyKP3,
	platform.ScancodeKP4:          glfw.KeyKP4,
	platform.ScancodeKP5:          glfw.KeyKP5,
	platform.ScancodeKP6:          glfw.KeyKP6,
	platform.ScancodeKP7:          glfw.KeyKP7,
	platform.ScancodeKP8:          glfw.KeyKP8,
	platform.ScancodeKP9:          glfw.KeyKP9,
	platform.ScancodeKPPeriod:     glfw.KeyKPDecimal,

	platform.ScancodeLCtrl:  glfw.KeyLeftControl,
	platform.ScancodeLShift: glfw.KeyLeftShift,
	platform.ScancodeLAlt:   glfw.KeyLeftAlt,
	platform.ScancodeLGUI:   glfw.KeyLeftSuper,
	platform.ScancodeRCtrl:  glfw.KeyRightControl,
	platform.ScancodeRShift: glfw.KeyRightShift,
	platform.ScancodeRAlt:   glfw.KeyRightAlt,
	platform.ScancodeRGUI:   glfw.KeyRightSuper,
}
