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
// Package outline renders a document as indented lines of text.
package outline

import (
	"strings"
	"unicode/utf8"

	difflib "github.com/pmezard/go-difflib/difflib"
	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/types"
)

const (
	indent         = "  "
	disabledMarker = "# "
	errorMarker    = "  !! "
	focusedCursor  = ">"
	emptyCursor    = "..."
)

// A Line is one line of a rendered document.
type Line struct {
	Text     string
	Colors   []types.Color // one per rune of Text
	Depth    int
	Frame    *editor.Frame  // nil on cursor lines
	Cursor   *editor.Cursor // set on cursor lines
	Disabled bool
	Error    string
	Focus    int // rune column of the focus, or -1
}

type renderer struct {
	doc   *editor.Document
	lines []Line
}

// Render draws the whole document.
func Render(d *editor.Document) []Line {
	return RenderFrames(d, []*editor.Frame{d.Root()})
}

func (r *renderer) frame(f *editor.Frame, depth int) {
	if f.Class() == types.ClassBlank {
		r.lines = append(r.lines, Line{
			Text:     r.prefix(f, depth),
			Depth:    depth,
			Frame:    f,
			Disabled: f.ShowsDisabled(),
			Focus:    -1,
		})
		return
	}
	first := true
	for _, it := range f.Items() {
		switch it := it.(type) {
		case *editor.Row:
			r.row(f, it, depth, first)
			first = false
		case *editor.Canvas:
			if it.IsShowing() {
				r.canvas(it, depth+1)
			}
		}
	}
}

func (r *renderer) prefix(f *editor.Frame, depth int) string {
	p := strings.Repeat(indent, depth)
	if f.ShowsDisabled() {
		p += disabledMarker
	}
	return p
}

// row renders a caption and its slots. Slot text holding line breaks
// continues on lines aligned under the first.
func (r *renderer) row(f *editor.Frame, row *editor.Row, depth int, first bool) {
	var b strings.Builder
	b.WriteString(r.prefix(f, depth))
	if first {
		if f.IsFinal() {
			b.WriteString("final ")
		}
		if f.IsStatic() {
			b.WriteString("static ")
		}
	}
	b.WriteString(row.Caption())
	margin := strings.Repeat(" ", utf8.RuneCountInString(b.String())+1)
	focus := -1
	for _, s := range row.Slots() {
		b.WriteString(" ")
		text := s.Text()
		if text == "" {
			if s.IsFocused() {
				focus = utf8.RuneCountInString(b.String())
			}
			b.WriteString("<" + s.Name() + ">")
			continue
		}
		b.WriteString(text)
		if s.IsFocused() {
			focus = utf8.RuneCountInString(b.String())
		}
	}
	var message string
	if first {
		if e := f.ShownError(); e != nil {
			message = e.Message
		}
	}

	for i, text := range strings.Split(b.String(), "\n") {
		l := Line{Depth: depth, Frame: f, Disabled: f.ShowsDisabled(), Focus: -1}
		n := utf8.RuneCountInString(text)
		if i > 0 {
			text = margin + text
		}
		if focus >= 0 && focus <= n {
			l.Focus = focus + utf8.RuneCountInString(text) - n
			focus = -1
		} else if focus > n {
			focus -= n + 1
		}
		if i == 0 && message != "" {
			l.Error = message
			text += errorMarker + message
		}
		l.Text = text
		r.lines = append(r.lines, l)
	}
}

func (r *renderer) canvas(c *editor.Canvas, depth int) {
	frames := c.Frames()
	for i, cur := range c.Cursors() {
		if r.doc.CursorHeight(cur) == editor.FullHeight {
			l := Line{Depth: depth, Cursor: cur, Focus: -1}
			mark := emptyCursor
			if cur.IsFocused() {
				mark = focusedCursor
				l.Focus = utf8.RuneCountInString(strings.Repeat(indent, depth))
			}
			l.Text = strings.Repeat(indent, depth) + mark
			r.lines = append(r.lines, l)
		}
		if i < len(frames) {
			r.frame(frames[i], depth)
		}
	}
}

// RenderFrames draws frames on their own, as they would be copied.
func RenderFrames(d *editor.Document, frames []*editor.Frame) []Line {
	r := &renderer{doc: d}
	for _, f := range frames {
		r.frame(f, 0)
	}
	h := NewHighlighter()
	for i := range r.lines {
		h.Highlight(&r.lines[i])
	}
	return r.lines
}

// FocusLine returns the index of the line holding the focus, or -1.
func FocusLine(lines []Line) int {
	for i, l := range lines {
		if l.Focus >= 0 {
			return i
		}
	}
	return -1
}

// Text joins the frame lines, leaving out cursors, so that it depends
// only on the document's content.
func Text(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Cursor != nil {
			continue
		}
		b.WriteString(strings.TrimRight(l.Text, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// String renders d as text.
func String(d *editor.Document) string {
	return Text(Render(d))
}

// Diff returns a unified diff between two renderings.
func Diff(before, after string, fromName, toName string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	})
}
