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

// Cursor heights, in outline lines.
const (
	HideHeight = 0
	FullHeight = 1
)

// cursorHeights is the document's record of which cursor is drawn open.
type cursorHeights struct {
	open *Cursor
}

func (h *cursorHeights) focusMoved(t Focusable) {
	c, _ := t.(*Cursor)
	h.open = c
}

// CursorHeight returns how many lines c takes on screen: the focused
// cursor and the cursor of an empty canvas are shown, others are not.
func (d *Document) CursorHeight(c *Cursor) int {
	if c == d.heights.open || c.canvas.Len() == 0 {
		return FullHeight
	}
	return HideHeight
}
