//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"github.com/timburks/stride/types"
)

// KeyTyped sends a printable key to the focused cursor or slot.
func (d *Document) KeyTyped(key rune) bool {
	switch t := d.focus.(type) {
	case *Cursor:
		return t.KeyTyped(key)
	case *Slot:
		return t.Insert(key)
	}
	return false
}

// ModifierKey sends a key typed with a modifier held to the modifier
// toggles of the focused frame, or of the frame before the cursor.
func (d *Document) ModifierKey(key rune) bool {
	switch t := d.focus.(type) {
	case *Slot:
		return t.row.frame.NotifyModifierKey(key)
	case *Cursor:
		if f := t.FrameBefore(); f != nil {
			return f.NotifyModifierKey(key)
		}
	}
	return false
}

// KeyPressed handles navigation and editing keys.
func (d *Document) KeyPressed(k types.Key, mod types.Modifier) bool {
	switch t := d.focus.(type) {
	case *Cursor:
		return d.cursorKey(t, k, mod)
	case *Slot:
		return d.slotKey(t, k, mod)
	}
	return false
}

func (d *Document) cursorKey(c *Cursor, k types.Key, mod types.Modifier) bool {
	skip := mod&types.ModAlt != 0
	switch k {
	case types.KeyArrowUp:
		if mod&types.ModShift != 0 {
			return d.SelectUp()
		}
		d.selection.Clear()
		return focusCursor(c.canvas.PrevCursor(c, !skip))
	case types.KeyArrowDown:
		if mod&types.ModShift != 0 {
			return d.SelectDown()
		}
		d.selection.Clear()
		return focusCursor(c.canvas.NextCursor(c, !skip))
	case types.KeyArrowLeft:
		d.selection.Clear()
		return cursorLeft(c)
	case types.KeyArrowRight, types.KeyTab:
		d.selection.Clear()
		return cursorRight(c)
	case types.KeyHome:
		d.selection.Clear()
		return focusCursor(c.canvas.FirstCursor())
	case types.KeyEnd:
		d.selection.Clear()
		return focusCursor(c.canvas.LastCursor())
	case types.KeyBackspace2:
		return c.Backspace()
	case types.KeyDelete:
		return c.Delete()
	case types.KeyEsc:
		if !d.selection.IsEmpty() {
			d.selection.Clear()
			return true
		}
		return c.Escape()
	case types.KeyEnter:
		return c.Enter(mod)
	case types.KeySpace:
		return c.KeyTyped(' ')
	}
	return false
}

func (d *Document) slotKey(s *Slot, k types.Key, mod types.Modifier) bool {
	f := s.row.frame
	switch k {
	case types.KeyArrowLeft:
		return s.row.focusLeft(s)
	case types.KeyArrowRight, types.KeyTab:
		return s.row.focusRight(s)
	case types.KeyArrowUp:
		return f.FocusUp(s.row)
	case types.KeyArrowDown:
		return f.FocusDown(s.row)
	case types.KeyHome:
		return s.row.focusFirstSlot()
	case types.KeyEnd:
		return s.row.focusLastSlot()
	case types.KeyEnter:
		if mod&(types.ModShift|types.ModCtrl) != 0 {
			return s.InsertLineBreak()
		}
		return f.FocusEnter(s.row)
	case types.KeyBackspace2:
		return s.Backspace()
	case types.KeyEsc:
		return f.Escape()
	case types.KeySpace:
		return s.Insert(' ')
	}
	return false
}
