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
	"sort"

	"github.com/timburks/stride/types"
)

// A Selection is a set of frames in one canvas.
type Selection struct {
	doc    *Document
	frames []*Frame
}

// Frames returns the selected frames in canvas order.
func (s *Selection) Frames() []*Frame {
	return append([]*Frame(nil), s.frames...)
}

func (s *Selection) IsEmpty() bool {
	return len(s.frames) == 0
}

func (s *Selection) Contains(f *Frame) bool {
	for _, x := range s.frames {
		if x == f {
			return true
		}
	}
	return false
}

func (s *Selection) Clear() {
	s.frames = nil
}

// toggle adds f, or removes it if it was selected. Selecting a frame in
// another canvas starts a new selection.
func (s *Selection) toggle(f *Frame) {
	if s.Contains(f) {
		s.remove(f)
		return
	}
	if len(s.frames) > 0 && s.frames[0].parent != f.parent {
		s.frames = nil
	}
	s.frames = append(s.frames, f)
	c := f.parent
	sort.Slice(s.frames, func(i, j int) bool {
		return c.indexOfFrame(s.frames[i]) < c.indexOfFrame(s.frames[j])
	})
}

func (s *Selection) remove(f *Frame) {
	for i, x := range s.frames {
		if x == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// forget drops frames that left the document.
func (s *Selection) forget(f *Frame) {
	kept := s.frames[:0]
	for _, x := range s.frames {
		if x != f && !x.disposed {
			kept = append(kept, x)
		}
	}
	s.frames = kept
}

// SelectUp toggles the frame above the focused cursor and moves above it.
func (d *Document) SelectUp() bool {
	c := d.FocusedCursor()
	if c == nil {
		return false
	}
	f := c.FrameBefore()
	if f == nil {
		return false
	}
	d.selection.toggle(f)
	c.canvas.CursorBefore(f).RequestFocus()
	return true
}

// SelectDown toggles the frame below the focused cursor and moves below it.
func (d *Document) SelectDown() bool {
	c := d.FocusedCursor()
	if c == nil {
		return false
	}
	f := c.FrameAfter()
	if f == nil {
		return false
	}
	d.selection.toggle(f)
	c.canvas.CursorAfter(f).RequestFocus()
	return true
}

// selectionKey applies key to the selection: an extension of a single
// selected frame, a selection extension every selected frame offers, or
// a frame kind that wraps the selection.
func (d *Document) selectionKey(c *Cursor, key rune) bool {
	frames := d.selection.Frames()
	if len(frames) == 1 {
		if e, ok := matchSingle(frames[0].Extensions(), key); ok {
			d.perform(func() {
				if e.SelectionAction != nil {
					e.SelectionAction(frames)
				} else {
					e.Action()
				}
			})
			return true
		}
	} else if e, ok := sharedSelectionExtension(frames, key); ok {
		d.perform(func() { e.SelectionAction(frames) })
		return true
	}
	canvas := frames[0].parent
	var wrappers []types.Kind
	for _, e := range d.dict.Lookup(key, canvas.check()) {
		if e.ValidOnSelection {
			wrappers = append(wrappers, e.Kind)
		}
	}
	if len(wrappers) != 1 {
		return false
	}
	d.wrapSelection(wrappers[0])
	return true
}

func matchSingle(exts []Extension, key rune) (Extension, bool) {
	var found []Extension
	for _, e := range exts {
		if e.Key == key && (e.ValidFor(types.SourceAfter) || e.ValidFor(types.SourceSelection)) {
			found = append(found, e)
		}
	}
	if len(found) > 1 {
		panic("ambiguous selection extensions for " + string(key))
	}
	if len(found) == 0 || (found[0].Action == nil && found[0].SelectionAction == nil) {
		return Extension{}, false
	}
	return found[0], true
}

func sharedSelectionExtension(frames []*Frame, key rune) (Extension, bool) {
	e, ok := matchExtension(frames[0].Extensions(), key, types.SourceSelection)
	if !ok || e.SelectionAction == nil {
		return Extension{}, false
	}
	for _, f := range frames[1:] {
		if _, ok := matchExtension(f.Extensions(), key, types.SourceSelection); !ok {
			return Extension{}, false
		}
	}
	return e, true
}

// wrapSelection puts a new frame of kind k where the selection was and
// moves the selected frames into its first canvas.
func (d *Document) wrapSelection(k types.Kind) {
	frames := d.selection.Frames()
	canvas := frames[0].parent
	at := canvas.CursorBefore(frames[0])
	els := elementsOf(frames)
	d.perform(func() {
		nf := d.NewFrame(k)
		must(canvas.InsertBefore(nf, at))
		for _, f := range frames {
			must(canvas.Remove(f))
		}
		body := nf.FirstCanvas()
		must(body.InsertFramesAfter(body.FirstCursor(), d.buildAll(els)))
		d.selection.Clear()
		nf.markFresh()
		if !nf.FocusWhenJustAdded() {
			canvas.CursorAfter(nf).RequestFocus()
		}
	})
}

// deleteSelection removes the selected frames and focuses the cursor
// where they were. A selection outside the canvas of cur is only cleared.
func (d *Document) deleteSelection(cur *Cursor) bool {
	frames := d.selection.Frames()
	canvas := frames[0].parent
	if canvas != cur.canvas {
		d.selection.Clear()
		return false
	}
	before := canvas.CursorBefore(frames[0])
	d.perform(func() {
		for _, f := range frames {
			must(canvas.Remove(f))
		}
	})
	d.selection.Clear()
	before.RequestFocus()
	return true
}
