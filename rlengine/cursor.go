package rlengine

import rl "github.com/gen2brain/raylib-go/raylib"

// Cursor switches the window cursor between the default arrow and the
// pointing hand.
type Cursor struct {
	pointer bool
}

func (c *Cursor) SetPointer(pointer bool) {
	if c.pointer == pointer {
		return
	}
	c.pointer = pointer
	if pointer {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)
}
