package hitgraph

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EbitenInput polls Ebitengine's mouse, wheel and touch state once per
// frame and feeds it to an Input. Ebitengine reports positions relative to
// the game screen, so the surface passed to the Dispatcher is normally
// Rect{0, 0, screenW, screenH}.
type EbitenInput struct {
	in *Input

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewEbitenInput creates a poller feeding in.
func NewEbitenInput(in *Input) *EbitenInput {
	return &EbitenInput{in: in}
}

// Update processes this frame's input. Call it from ebiten.Game.Update.
// A queued injected event, if any, replaces real mouse input for the frame.
func (e *EbitenInput) Update() {
	if !ebiten.IsFocused() {
		for i := 0; i < maxPointers; i++ {
			e.in.Cancel(i)
		}
		return
	}
	if e.in.Step() {
		return
	}
	mods := readModifiers()
	e.processMouse(mods)
	e.processTouches(mods)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processMouse handles mouse buttons and the wheel (pointer 0).
func (e *EbitenInput) processMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	e.in.Feed(PointerSample{
		PointerID: 0,
		ClientX:   x,
		ClientY:   y,
		Pressed:   pressed,
		Button:    button,
		Modifiers: mods,
	})

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		e.in.Wheel(NativeEvent{
			ClientX:   x,
			ClientY:   y,
			Modifiers: mods,
			DeltaX:    wx,
			DeltaY:    wy,
		})
	}
}

// processTouches handles touch input (pointers 1-9).
func (e *EbitenInput) processTouches(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(e.prevTouchIDs[:0])
	e.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := e.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		e.in.Feed(PointerSample{
			PointerID: slot,
			ClientX:   float64(tx),
			ClientY:   float64(ty),
			Pressed:   true,
			Button:    MouseButtonLeft,
			Modifiers: mods,
		})
	}

	// Release touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && !active[i] {
			if ps, ok := e.in.pointers[i]; ok && ps.down {
				e.in.Feed(PointerSample{
					PointerID: i,
					ClientX:   ps.lastX,
					ClientY:   ps.lastY,
					Modifiers: mods,
				})
			}
			e.in.Forget(i)
			e.touchUsed[i] = false
			e.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (e *EbitenInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && e.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !e.touchUsed[i] {
			e.touchUsed[i] = true
			e.touchMap[i] = tid
			return i
		}
	}
	return -1
}
