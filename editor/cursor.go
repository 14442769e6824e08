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
	"fmt"
	"strings"
	"unicode"

	"github.com/timburks/stride/types"
)

// A Cursor is a gap between frames in a canvas. Its position is its
// index in the canvas; it never moves to another canvas.
type Cursor struct {
	id     int
	canvas *Canvas
	misses int // consecutive unrecognized keys
}

func (c *Cursor) ID() int {
	return c.id
}

func (c *Cursor) Canvas() *Canvas {
	return c.canvas
}

func (c *Cursor) Index() int {
	return c.canvas.IndexOfCursor(c)
}

func (c *Cursor) doc() *Document {
	return c.canvas.doc
}

func (c *Cursor) EnclosingFrame() *Frame {
	return c.canvas.Frame()
}

func (c *Cursor) RequestFocus() {
	c.doc().setFocus(c)
}

func (c *Cursor) IsFocused() bool {
	return c.doc().focus == Focusable(c)
}

func (c *Cursor) FrameBefore() *Frame {
	return c.canvas.FrameBefore(c)
}

func (c *Cursor) FrameAfter() *Frame {
	return c.canvas.FrameAfter(c)
}

// Misses returns the count of consecutive unrecognized keys.
func (c *Cursor) Misses() int {
	return c.misses
}

// Up returns the cursor before the frame above, or the cursor before
// this canvas.
func (c *Cursor) Up() *Cursor {
	if f := c.FrameBefore(); f != nil {
		return c.canvas.CursorBefore(f)
	}
	if c.canvas.parent == nil {
		return nil
	}
	return c.canvas.parent.CursorBeforeCanvas(c.canvas)
}

// Down returns the cursor after the frame below, or the cursor after
// this canvas.
func (c *Cursor) Down() *Cursor {
	if f := c.FrameAfter(); f != nil {
		return c.canvas.CursorAfter(f)
	}
	if c.canvas.parent == nil {
		return nil
	}
	return c.canvas.parent.CursorAfterCanvas(c.canvas)
}

// canInsert is false inside disabled frames.
func (c *Cursor) canInsert() bool {
	f := c.EnclosingFrame()
	return f == nil || (f.enabled && !f.disposed)
}

const dispatchSymbols = "/\\*=+-\n "

func dispatchable(key rune) bool {
	return unicode.IsLetter(key) || strings.ContainsRune(dispatchSymbols, key)
}

// KeyTyped handles a printable key at the cursor. It returns false when
// the key was not used.
func (c *Cursor) KeyTyped(key rune) bool {
	d := c.doc()
	if !dispatchable(key) {
		d.selection.Clear()
		return false
	}
	if !c.canInsert() {
		return false
	}
	if !d.selection.IsEmpty() {
		if d.selectionKey(c, key) {
			return true
		}
		d.selection.Clear()
	}
	if p := c.canvas.parent; p != nil {
		if processInnerExtensionKey(p, c.canvas, c, key, c == c.canvas.FirstCursor()) {
			return true
		}
	}
	if f := c.FrameAfter(); f != nil && f.notifyPrefixKey(key) {
		return true
	}
	if f := c.FrameBefore(); f != nil && f.notifyExtensionKey(key) {
		return true
	}
	entries := d.dict.Lookup(key, c.canvas.check())
	switch len(entries) {
	case 0:
		c.misses++
		if c.misses >= d.trigger {
			d.showCatalog(c)
		}
		return false
	case 1:
		c.misses = 0
		d.perform(func() {
			f := d.NewFrame(entries[0].Kind)
			must(c.canvas.InsertBefore(f, c))
			f.markFresh()
			if !f.FocusWhenJustAdded() {
				c.RequestFocus()
			}
		})
		return true
	default:
		panic(fmt.Sprintf("ambiguous frame kinds for %q", key))
	}
}

// Backspace removes the selection or the frame before the cursor. At the
// start of a canvas it offers the key to the canvas parent.
func (c *Cursor) Backspace() bool {
	d := c.doc()
	if !c.canInsert() {
		return false
	}
	if !d.selection.IsEmpty() {
		return d.deleteSelection(c)
	}
	if f := c.FrameBefore(); f != nil {
		before := c.canvas.CursorBefore(f)
		d.perform(func() {
			must(c.canvas.Remove(f))
		})
		before.RequestFocus()
		return true
	}
	if p := c.canvas.parent; p != nil {
		return processInnerExtensionKey(p, c.canvas, c, types.Backspace, true)
	}
	return false
}

// Delete removes the selection or the frame after the cursor.
func (c *Cursor) Delete() bool {
	d := c.doc()
	if !c.canInsert() {
		return false
	}
	if !d.selection.IsEmpty() {
		return d.deleteSelection(c)
	}
	f := c.FrameAfter()
	if f == nil {
		return false
	}
	d.perform(func() {
		must(c.canvas.Remove(f))
	})
	return true
}

// Escape removes the frame before the cursor, or at the start of a
// frame's first canvas that frame, if it is fresh and has always been blank.
func (c *Cursor) Escape() bool {
	f := c.FrameBefore()
	if f == nil {
		// at the top of a canvas, only a frame that opens it can be escaped
		if up := c.Up(); up != nil {
			f = up.FrameAfter()
		}
	}
	if f == nil {
		return false
	}
	return f.Escape()
}

// Enter without modifiers types a newline; with modifiers it does nothing
// at a cursor.
func (c *Cursor) Enter(mod types.Modifier) bool {
	if mod&(types.ModShift|types.ModCtrl) != 0 {
		return false
	}
	return c.KeyTyped('\n')
}
