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
package screen

import (
	"fmt"

	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/outline"
	"github.com/timburks/stride/types"
)

// A Display receives the cells drawn by a Window.
type Display interface {
	SetCell(col, row int, ch rune, color types.Color)
	SetCellReversed(col, row int, ch rune, color types.Color)
}

// A Window is a scrolling view of a rendered document.
type Window struct {
	name     string
	origin   types.Point
	size     types.Size
	cursor   types.Point // focus position in the outline
	offset   types.Size  // display offset
	lines    []outline.Line
	selected map[*editor.Frame]bool
}

func NewWindow(name string) *Window {
	return &Window{name: name}
}

func (w *Window) SetSize(origin types.Point, size types.Size) {
	w.origin = origin
	w.size = size
}

// SetLines replaces the displayed outline and moves the cursor to its focus.
func (w *Window) SetLines(lines []outline.Line) {
	w.lines = lines
	if i := outline.FocusLine(lines); i >= 0 {
		w.cursor = types.Point{Row: i, Col: lines[i].Focus}
	}
}

// SetSelection marks frames to be drawn reversed, with their contents.
func (w *Window) SetSelection(frames []*editor.Frame) {
	w.selected = make(map[*editor.Frame]bool)
	for _, f := range frames {
		w.selected[f] = true
	}
}

func (w *Window) isSelected(l outline.Line) bool {
	for f := l.Frame; f != nil; f = f.ParentFrame() {
		if w.selected[f] {
			return true
		}
	}
	if l.Cursor != nil {
		for f := l.Cursor.EnclosingFrame(); f != nil; f = f.ParentFrame() {
			if w.selected[f] {
				return true
			}
		}
	}
	return false
}

// draw the visible lines and the info bar below them
func (w *Window) Render(display Display) {
	w.adjustDisplayOffsetForScrolling()

	for i := w.origin.Row; i < w.origin.Row+w.size.Rows-1; i++ {
		var line []rune
		var colors []types.Color
		reversed := false
		if (i + w.offset.Rows) < len(w.lines) {
			l := w.lines[i+w.offset.Rows]
			line = []rune(l.Text)
			colors = l.Colors
			reversed = w.isSelected(l)
			if w.offset.Cols < len(line) {
				line = line[w.offset.Cols:]
				if w.offset.Cols < len(colors) {
					colors = colors[w.offset.Cols:]
				} else {
					colors = nil
				}
			} else {
				line = nil
			}
		} else {
			line = []rune{'~'}
			colors = []types.Color{types.ColorWhite}
		}
		// truncate line to fit screen
		if len(line) > w.size.Cols {
			line = line[0:w.size.Cols]
		}
		for j, c := range line {
			var color types.Color = types.ColorWhite
			if j < len(colors) {
				color = colors[j]
			}
			if reversed {
				display.SetCellReversed(j+w.origin.Col, i, c, color)
			} else {
				display.SetCell(j+w.origin.Col, i, c, color)
			}
		}
	}

	infoText := w.computeInfoBarText(w.size.Cols)
	infoRow := w.origin.Row + w.size.Rows - 1
	for x, ch := range []rune(infoText) {
		display.SetCellReversed(x+w.origin.Col, infoRow, ch, types.ColorBlack)
	}
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(length int) string {
	finalText := fmt.Sprintf(" %d/%d ", w.cursor.Row+1, len(w.lines))
	text := " stride - " + w.name
	if n := len(w.selected); n > 0 {
		text += fmt.Sprintf(" (%d selected)", n)
	}
	for len(text) < length-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	return text
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling() {
	if w.cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = w.cursor.Row
	}
	// reserve the last row for the info bar
	textRows := w.size.Rows - 1
	if w.cursor.Row-w.offset.Rows >= textRows {
		// scroll down
		w.offset.Rows = w.cursor.Row - textRows + 1
	}
	if w.cursor.Col < w.offset.Cols {
		// scroll left
		w.offset.Cols = w.cursor.Col
	}
	if w.cursor.Col-w.offset.Cols >= w.size.Cols {
		// scroll right
		w.offset.Cols = w.cursor.Col - w.size.Cols + 1
	}
}

// CursorPosition returns the screen position of the focus.
func (w *Window) CursorPosition() types.Point {
	return types.Point{
		Col: w.origin.Col + w.cursor.Col - w.offset.Cols,
		Row: w.origin.Row + w.cursor.Row - w.offset.Rows,
	}
}

// renderPanel draws lines in a boxed-off column.
func renderPanel(display Display, lines []string, origin types.Point, size types.Size) {
	for i := 0; i < size.Rows; i++ {
		display.SetCell(origin.Col, origin.Row+i, '|', types.ColorPunctuation)
		if i >= len(lines) {
			continue
		}
		for j, ch := range []rune(lines[i]) {
			if j+2 >= size.Cols {
				break
			}
			display.SetCell(origin.Col+2+j, origin.Row+i, ch, types.ColorWhite)
		}
	}
}

// panelWidth is the width needed to show lines, at most half of cols.
func panelWidth(lines []string, cols int) int {
	if len(lines) == 0 {
		return 0
	}
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	return min(width+3, cols/2)
}
