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

// Frames move focus through their items. Moving past the first or last
// item leaves the frame for the cursor before or after it; at the edges
// of the document there is nowhere to go and the move does nothing.

func focusCursor(c *Cursor) bool {
	if c == nil {
		return false
	}
	c.RequestFocus()
	return true
}

// FocusLeft moves focus to the item left of from.
func (f *Frame) FocusLeft(from Item) bool {
	for i := f.itemIndex(from) - 1; i >= 0; i-- {
		if f.items[i].focusRightEndFromNext() {
			return true
		}
	}
	return focusCursor(f.CursorBefore())
}

// FocusRight moves focus to the item right of from.
func (f *Frame) FocusRight(from Item) bool {
	for i := f.itemIndex(from) + 1; i < len(f.items); i++ {
		if f.items[i].focusLeftEndFromPrev() {
			return true
		}
	}
	return focusCursor(f.CursorAfter())
}

// FocusUp moves focus to the item above from, arriving at its bottom.
func (f *Frame) FocusUp(from Item) bool {
	for i := f.itemIndex(from) - 1; i >= 0; i-- {
		if f.items[i].focusBottomEndFromNext() {
			return true
		}
	}
	return focusCursor(f.CursorBefore())
}

// FocusDown moves focus to the item below from, arriving at its top.
func (f *Frame) FocusDown(from Item) bool {
	for i := f.itemIndex(from) + 1; i < len(f.items); i++ {
		if f.items[i].focusTopEndFromPrev() {
			return true
		}
	}
	return focusCursor(f.CursorAfter())
}

func (f *Frame) FocusEnter(from Item) bool {
	return f.FocusDown(from)
}

// FocusFrameStart focuses the first thing inside f.
func (f *Frame) FocusFrameStart() bool {
	if !f.enabled {
		return false
	}
	for _, it := range f.items {
		if it.focusLeftEndFromPrev() {
			return true
		}
	}
	return false
}

// FocusFrameEnd focuses the last thing inside f.
func (f *Frame) FocusFrameEnd() bool {
	if !f.enabled {
		return false
	}
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].focusRightEndFromNext() {
			return true
		}
	}
	return false
}

// cursorLeft enters the frame before c at its end, or leaves the canvas.
func cursorLeft(c *Cursor) bool {
	if f := c.FrameBefore(); f != nil {
		if f.FocusFrameEnd() {
			return true
		}
		return focusCursor(c.Up())
	}
	if f := c.EnclosingFrame(); f != nil {
		return f.FocusLeft(c.canvas)
	}
	return false
}

// cursorRight enters the frame after c at its start, or leaves the canvas.
func cursorRight(c *Cursor) bool {
	if f := c.FrameAfter(); f != nil {
		if f.FocusFrameStart() {
			return true
		}
		return focusCursor(c.Down())
	}
	if f := c.EnclosingFrame(); f != nil {
		return f.FocusRight(c.canvas)
	}
	return false
}
