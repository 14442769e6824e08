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
	"strings"
	"testing"

	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/outline"
	"github.com/timburks/stride/types"
)

// grid is a Display that remembers what was drawn.
type grid struct {
	cells    map[types.Point]rune
	reversed map[types.Point]bool
}

func newGrid() *grid {
	return &grid{cells: map[types.Point]rune{}, reversed: map[types.Point]bool{}}
}

func (g *grid) SetCell(col, row int, ch rune, color types.Color) {
	g.cells[types.Point{Row: row, Col: col}] = ch
}

func (g *grid) SetCellReversed(col, row int, ch rune, color types.Color) {
	p := types.Point{Row: row, Col: col}
	g.cells[p] = ch
	g.reversed[p] = true
}

func (g *grid) row(r, cols int) string {
	var b strings.Builder
	for c := 0; c < cols; c++ {
		ch, ok := g.cells[types.Point{Row: r, Col: c}]
		if !ok {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// calls returns a document with n calls in a method body, focused after
// the last one.
func calls(t *testing.T, n int) (*editor.Document, *editor.Canvas) {
	d := editor.NewDocument(dictionary.Default())
	m := d.NewFrame(types.KindMethod)
	if err := d.Root().CanvasFor(types.PartMethods).InsertAfter(m, nil); err != nil {
		t.Fatalf("Insert method failed: %+v", err)
	}
	body := m.FirstCanvas()
	for i := 0; i < n; i++ {
		f := d.NewFrame(types.KindCall)
		if err := body.InsertAfter(f, nil); err != nil {
			t.Fatalf("Insert call failed: %+v", err)
		}
		f.Slots()[0].SetText("run()")
	}
	body.LastCursor().RequestFocus()
	return d, body
}

func TestRender(t *testing.T) {
	d, _ := calls(t, 1)
	w := NewWindow("test")
	w.SetSize(types.Point{}, types.Size{Rows: 10, Cols: 40})
	w.SetLines(outline.Render(d))
	g := newGrid()
	w.Render(g)

	if got := g.row(0, 40); got != "class <name>" {
		t.Errorf("Unexpected first row %q", got)
	}
	found := false
	for r := 0; r < 9; r++ {
		if strings.TrimSpace(g.row(r, 40)) == "call run()" {
			found = true
		}
	}
	if !found {
		t.Errorf("The call was not drawn")
	}
	if got := g.row(8, 40); got != "~" {
		t.Errorf("Rows past the document show %q", got)
	}
	info := g.row(9, 40)
	if !strings.HasPrefix(info, " stride - test") || !g.reversed[types.Point{Row: 9, Col: 0}] {
		t.Errorf("Unexpected info bar %q", info)
	}

	p := w.CursorPosition()
	if ch := g.cells[p]; ch != '>' {
		t.Errorf("Cursor is at %+v over %q", p, ch)
	}
}

func TestScrolling(t *testing.T) {
	d, body := calls(t, 30)
	w := NewWindow("test")
	w.SetSize(types.Point{}, types.Size{Rows: 6, Cols: 40})
	w.SetLines(outline.Render(d))
	w.Render(newGrid())
	if p := w.CursorPosition(); p.Row != 4 {
		t.Errorf("Focus at the end is drawn on row %d", p.Row)
	}

	body.FirstCursor().RequestFocus()
	w.SetLines(outline.Render(d))
	g := newGrid()
	w.Render(g)
	p := w.CursorPosition()
	if p.Row != 0 || g.cells[p] != '>' {
		t.Errorf("Scrolled back to %+v", p)
	}
}

func TestSelectionIsReversed(t *testing.T) {
	d, body := calls(t, 2)
	w := NewWindow("test")
	w.SetSize(types.Point{}, types.Size{Rows: 20, Cols: 40})
	w.SetLines(outline.Render(d))
	w.SetSelection(body.Frames()[1:])
	g := newGrid()
	w.Render(g)

	count := 0
	for p := range g.reversed {
		if p.Row < 19 && p.Col == 4 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d lines drawn reversed", count)
	}
	if !strings.Contains(g.row(19, 40), "(1 selected)") {
		t.Errorf("Info bar is %q", g.row(19, 40))
	}
}

func TestPanel(t *testing.T) {
	lines := []string{"r      Return from method", "i      If"}
	width := panelWidth(lines, 100)
	if width != len(lines[0])+3 {
		t.Errorf("Panel width is %d", width)
	}
	if panelWidth(lines, 20) != 10 {
		t.Errorf("Panel is wider than half the screen")
	}
	if panelWidth(nil, 100) != 0 {
		t.Errorf("Empty panel takes space")
	}
	g := newGrid()
	renderPanel(g, lines, types.Point{Col: 10}, types.Size{Rows: 3, Cols: width})
	if got := g.row(1, 100); got != strings.Repeat(" ", 10)+"| i      If" {
		t.Errorf("Unexpected panel row %q", got)
	}
	if got := g.row(2, 100); got != strings.Repeat(" ", 10)+"|" {
		t.Errorf("Unexpected empty panel row %q", got)
	}
}
