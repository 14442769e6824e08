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

	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

// An Item is a row or a canvas in a frame's content.
type Item interface {
	Part() types.Part
	focusLeftEndFromPrev() bool
	focusRightEndFromNext() bool
	focusTopEndFromPrev() bool
	focusBottomEndFromNext() bool
}

// A Frame is a structural unit of code. Its content is a sequence of rows
// and canvases; the canvases hold child frames.
type Frame struct {
	id          int
	doc         *Document
	class       types.Class
	v           *variant
	items       []Item
	parent      *Canvas
	enabled     bool
	preview     Preview
	fresh       bool
	alwaysBlank bool
	disposed    bool
	final       bool
	static      bool
	errors      []*CodeError
}

func (d *Document) newFrame(class types.Class) *Frame {
	v, ok := variants[class]
	if !ok {
		panic(fmt.Sprintf("no variant for %s", class))
	}
	f := &Frame{
		id:          d.allocID(),
		doc:         d,
		class:       class,
		v:           v,
		enabled:     true,
		alwaysBlank: true,
	}
	for _, l := range v.layout {
		f.items = append(f.items, f.newItem(l))
	}
	d.frames[f.id] = f
	return f
}

func (f *Frame) newItem(l layoutItem) Item {
	if l.canvas {
		c := NewCanvas(f.doc, f, l.part)
		c.showing = !l.hidden
		return c
	}
	return newRow(f, l.part)
}

func (f *Frame) ID() int {
	return f.id
}

func (f *Frame) Class() types.Class {
	return f.class
}

func (f *Frame) Document() *Document {
	return f.doc
}

// Parent returns the canvas holding f, or nil.
func (f *Frame) Parent() *Canvas {
	return f.parent
}

// ParentFrame returns the frame whose canvas holds f, or nil.
func (f *Frame) ParentFrame() *Frame {
	if f.parent == nil {
		return nil
	}
	return f.parent.Frame()
}

func (f *Frame) Items() []Item {
	return append([]Item(nil), f.items...)
}

func (f *Frame) itemIndex(it Item) int {
	for i, x := range f.items {
		if x == it {
			return i
		}
	}
	panic(fmt.Sprintf("item not in %s frame %d", f.class, f.id))
}

// Canvases returns the child canvases in order.
func (f *Frame) Canvases() []*Canvas {
	var cs []*Canvas
	for _, it := range f.items {
		if c, ok := it.(*Canvas); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// CanvasFor returns the first canvas for a part, or nil.
func (f *Frame) CanvasFor(p types.Part) *Canvas {
	for _, c := range f.Canvases() {
		if c.part == p {
			return c
		}
	}
	return nil
}

// FirstCanvas returns the first child canvas, or nil.
func (f *Frame) FirstCanvas() *Canvas {
	if cs := f.Canvases(); len(cs) > 0 {
		return cs[0]
	}
	return nil
}

func (f *Frame) Rows() []*Row {
	var rs []*Row
	for _, it := range f.items {
		if r, ok := it.(*Row); ok {
			rs = append(rs, r)
		}
	}
	return rs
}

// Slots returns the slots of every row in order.
func (f *Frame) Slots() []*Slot {
	var ss []*Slot
	for _, r := range f.Rows() {
		ss = append(ss, r.slots...)
	}
	return ss
}

func (f *Frame) firstSlot() *Slot {
	if ss := f.Slots(); len(ss) > 0 {
		return ss[0]
	}
	return nil
}

// Caption returns the caption of the first row.
func (f *Frame) Caption() string {
	if rs := f.Rows(); len(rs) > 0 {
		return rs[0].caption
	}
	return ""
}

// CursorBefore returns the cursor before f in its canvas, or nil.
func (f *Frame) CursorBefore() *Cursor {
	if f.parent == nil {
		return nil
	}
	return f.parent.CursorBefore(f)
}

// CursorAfter returns the cursor after f in its canvas, or nil.
func (f *Frame) CursorAfter() *Cursor {
	if f.parent == nil {
		return nil
	}
	return f.parent.CursorAfter(f)
}

// FirstInternalCursor returns the first cursor of the first visible
// canvas. Disabled frames have no internal cursors.
func (f *Frame) FirstInternalCursor() *Cursor {
	if !f.enabled {
		return nil
	}
	for _, c := range f.Canvases() {
		if c.showing {
			return c.FirstCursor()
		}
	}
	return nil
}

// LastInternalCursor returns the last cursor of the last visible canvas.
func (f *Frame) LastInternalCursor() *Cursor {
	if !f.enabled {
		return nil
	}
	cs := f.Canvases()
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].showing {
			return cs[i].LastCursor()
		}
	}
	return nil
}

func (f *Frame) IsFresh() bool {
	return f.fresh
}

func (f *Frame) markFresh() {
	f.fresh = true
}

func (f *Frame) markNonFresh() {
	f.fresh = false
}

func (f *Frame) IsDisposed() bool {
	return f.disposed
}

func (f *Frame) IsFinal() bool {
	return f.final
}

func (f *Frame) IsStatic() bool {
	return f.static
}

// AlwaysBeenBlank reports whether f has been almost blank since it was made.
func (f *Frame) AlwaysBeenBlank() bool {
	return f.alwaysBlank
}

// IsAlmostBlank reports whether every slot is blank and every canvas
// holds only blank frames.
func (f *Frame) IsAlmostBlank() bool {
	for _, s := range f.Slots() {
		if !s.IsBlank() {
			return false
		}
	}
	for _, c := range f.Canvases() {
		if !c.IsAlmostBlank() {
			return false
		}
	}
	return true
}

func (f *Frame) trackBlank() {
	if f.alwaysBlank && !f.IsAlmostBlank() {
		f.alwaysBlank = false
	}
}

// IsEffective reports whether the frame produces code.
func (f *Frame) IsEffective() bool {
	return f.enabled && f.class != types.ClassBlank && f.class != types.ClassComment
}

// cleanup runs once, when f leaves its canvas.
func (f *Frame) cleanup() {
	if f.disposed {
		panic(fmt.Sprintf("%s frame %d cleaned up twice", f.class, f.id))
	}
	f.disposed = true
	for _, c := range f.Canvases() {
		for _, child := range c.frames {
			child.cleanup()
		}
	}
	f.errors = nil
	delete(f.doc.frames, f.id)
}

// FocusWhenJustAdded gives a new frame focus: its first slot, else its
// first canvas. It returns false if f has nothing to focus.
func (f *Frame) FocusWhenJustAdded() bool {
	if s := f.firstSlot(); s != nil {
		s.RequestFocus()
		return true
	}
	if c := f.FirstInternalCursor(); c != nil {
		c.RequestFocus()
		return true
	}
	return false
}

// Escape removes f if it is fresh and has never held anything.
func (f *Frame) Escape() bool {
	if !f.alwaysBlank || !f.fresh || f.parent == nil {
		return false
	}
	before := f.CursorBefore()
	f.doc.perform(func() {
		must(f.parent.Remove(f))
	})
	before.RequestFocus()
	return true
}

// Extensions returns every extension f offers. The list is built on each
// call, so actions may change f while callers iterate it.
func (f *Frame) Extensions() []Extension {
	exts := []Extension{f.toggleEnabledExtension()}
	if f.v.extensions != nil {
		exts = append(exts, f.v.extensions(f)...)
	}
	return exts
}

func (f *Frame) toggleEnabledExtension() Extension {
	label := "Disable"
	if !f.enabled {
		label = "Enable"
	}
	return Extension{
		Key:     dictionary.ToggleKey,
		Label:   label,
		Sources: types.SourcesOf(types.SourceBefore, types.SourceSelection),
		Action: func() {
			f.SetFrameEnabled(!f.enabled)
		},
		SelectionAction: func(frames []*Frame) {
			f.doc.toggleEnabled(frames)
		},
	}
}
