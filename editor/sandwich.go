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
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

func (f *Frame) tailCanvas() *Canvas {
	return f.CanvasFor(types.PartTail)
}

func (f *Frame) lastCanvas() *Canvas {
	cs := f.Canvases()
	if len(cs) == 0 {
		return nil
	}
	return cs[len(cs)-1]
}

// sandwichExtensions add a branch after an if or try frame.
func sandwichExtensions(f *Frame) []Extension {
	if f.tailCanvas() != nil {
		return nil
	}
	s := f.v.sandwich
	dict := f.doc.dict
	after := types.SourcesOf(types.SourceAfter)
	return []Extension{
		{
			Key:     dict.ExtensionChar(s.intermediate),
			Label:   "Add " + s.intermediate,
			Sources: after,
			Action:  func() { f.addIntermediate(nil, nil) },
		},
		{
			Key:     dict.ExtensionChar(s.tail),
			Label:   "Add " + s.tail,
			Sources: after,
			Action:  func() { f.addTail(nil, nil) },
		},
	}
}

// sandwichInner splits and merges the canvases of an if or try frame.
func sandwichInner(f *Frame, c *Canvas, cur *Cursor) []Extension {
	s := f.v.sandwich
	dict := f.doc.dict
	anywhere := types.SourcesOf(types.SourceInsideFirst, types.SourceInsideLater)
	var exts []Extension
	switch c.part {
	case types.PartBody:
		if e, ok := pullUpExtension(f); ok {
			exts = append(exts, e)
		}
	case types.PartIntermediate, types.PartTail:
		exts = append(exts, Extension{
			Key:     types.Backspace,
			Label:   "Remove " + f.v.rows[c.part].caption + ", keep contents",
			Sources: types.SourcesOf(types.SourceInsideFirst),
			Action:  func() { f.mergeCanvasUp(c) },
		})
	}
	if c.part == types.PartTail {
		return exts
	}
	exts = append(exts, Extension{
		Key:     dict.ExtensionChar(s.intermediate),
		Label:   "Add " + s.intermediate,
		Sources: anywhere,
		Action:  func() { f.addIntermediate(c, cur) },
	})
	if f.tailCanvas() == nil && f.lastCanvas() == c {
		exts = append(exts, Extension{
			Key:     dict.ExtensionChar(s.tail),
			Label:   "Add " + s.tail,
			Sources: anywhere,
			Action:  func() { f.addTail(c, cur) },
		})
	}
	return exts
}

// insertPair adds a row and a canvas for part at item index i.
func (f *Frame) insertPair(i int, part types.Part) (*Row, *Canvas) {
	r := newRow(f, part)
	c := NewCanvas(f.doc, f, part)
	f.items = append(f.items, nil, nil)
	copy(f.items[i+2:], f.items[i:])
	f.items[i] = r
	f.items[i+1] = c
	return r, c
}

// addIntermediate adds an intermediate canvas after from, or before the
// tail when from is nil. Frames after cur in from move into it.
func (f *Frame) addIntermediate(from *Canvas, cur *Cursor) {
	i := len(f.items)
	if from != nil {
		i = f.itemIndex(from) + 1
	} else if t := f.tailCanvas(); t != nil {
		i = f.itemIndex(t) - 1
	}
	r, c := f.insertPair(i, types.PartIntermediate)
	if from != nil {
		f.moveFramesAfter(from, cur, c)
	}
	f.doc.modified(f)
	if !r.focusFirstSlot() {
		c.FirstCursor().RequestFocus()
	}
}

// addTail adds the tail canvas. Frames after cur in from move into it.
func (f *Frame) addTail(from *Canvas, cur *Cursor) {
	_, c := f.insertPair(len(f.items), types.PartTail)
	if from != nil {
		f.moveFramesAfter(from, cur, c)
	}
	f.doc.modified(f)
	c.FirstCursor().RequestFocus()
}

// moveFramesAfter replaces the frames after cur in from with copies at
// the end of to.
func (f *Frame) moveFramesAfter(from *Canvas, cur *Cursor, to *Canvas) {
	frames := from.FramesAfter(cur)
	if len(frames) == 0 {
		return
	}
	els := elementsOf(frames)
	for _, m := range frames {
		must(from.Remove(m))
	}
	must(to.InsertFramesAfter(to.LastCursor(), f.doc.buildAll(els)))
}

// mergeCanvasUp removes c and its row, moving its frames to the end of
// the previous canvas behind a blank frame.
func (f *Frame) mergeCanvasUp(c *Canvas) {
	var prev *Canvas
	for _, x := range f.Canvases() {
		if x == c {
			break
		}
		prev = x
	}
	if prev == nil {
		return
	}
	dest := prev.LastCursor()
	els := elementsOf(c.frames)
	dest.RequestFocus()
	f.removePair(c)
	if len(els) > 0 {
		frames := append([]*Frame{f.doc.newFrame(types.ClassBlank)}, f.doc.buildAll(els)...)
		must(prev.InsertFramesAfter(dest, frames))
	}
	f.doc.modified(f)
	dest.RequestFocus()
}

// removePair drops c and the row before it. Focus must be outside c.
func (f *Frame) removePair(c *Canvas) {
	c.RemoveAll()
	i := f.itemIndex(c)
	start := i
	if i > 0 {
		if _, ok := f.items[i-1].(*Row); ok {
			start = i - 1
		}
	}
	f.items = append(f.items[:start], f.items[i+1:]...)
}

func switchExtensions(f *Frame) []Extension {
	if f.CanvasFor(types.PartDefault) != nil {
		return nil
	}
	return []Extension{{
		Key:     f.doc.dict.ExtensionChar(dictionary.SwitchDefault),
		Label:   "Add default",
		Sources: types.SourcesOf(types.SourceAfter),
		Action:  func() { f.addDefault() },
	}}
}

func switchInner(f *Frame, c *Canvas, cur *Cursor) []Extension {
	var exts []Extension
	switch c.part {
	case types.PartCases:
		if e, ok := pullUpExtension(f); ok {
			exts = append(exts, e)
		}
		if f.CanvasFor(types.PartDefault) == nil {
			exts = append(exts, Extension{
				Key:     f.doc.dict.ExtensionChar(dictionary.SwitchDefault),
				Label:   "Add default",
				Sources: types.SourcesOf(types.SourceInsideFirst, types.SourceInsideLater),
				Action:  func() { f.addDefault() },
			})
		}
	case types.PartDefault:
		if f.canRemoveDefault() {
			exts = append(exts, Extension{
				Key:     types.Backspace,
				Label:   "Remove default, keep contents",
				Sources: types.SourcesOf(types.SourceInsideFirst),
				Action:  func() { f.removeDefault() },
			})
		}
	}
	return exts
}

func (f *Frame) addDefault() {
	_, c := f.insertPair(len(f.items), types.PartDefault)
	f.doc.modified(f)
	c.FirstCursor().RequestFocus()
}

func (f *Frame) canRemoveDefault() bool {
	c := f.CanvasFor(types.PartDefault)
	if c == nil {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	if f.parent == nil {
		return false
	}
	tc := f.parent.check()
	for _, x := range c.frames {
		if !tc.CanPlace(x.class) {
			return false
		}
	}
	return true
}

// removeDefault drops the default canvas; its frames follow the switch.
func (f *Frame) removeDefault() {
	c := f.CanvasFor(types.PartDefault)
	els := elementsOf(c.frames)
	f.CanvasFor(types.PartCases).LastCursor().RequestFocus()
	f.removePair(c)
	if len(els) > 0 {
		must(f.parent.InsertFramesAfter(f.CursorAfter(), f.doc.buildAll(els)))
	}
	f.doc.modified(f)
}

// CanPullUp reports whether f can be replaced by its contents.
func (f *Frame) CanPullUp() bool {
	if !f.v.pullUp || f.parent == nil || !f.enabled {
		return false
	}
	_, ok := f.pulledContents(f.parent.check())
	return ok
}

// pulledContents lists what replaces f: the frames of each canvas that
// tc accepts, with frames tc rejects flattened into their own contents,
// and a blank frame between canvases.
func (f *Frame) pulledContents(tc dictionary.TypeCheck) ([]Element, bool) {
	var out []Element
	for _, c := range f.Canvases() {
		group, ok := flatten(c.frames, tc)
		if !ok {
			return nil, false
		}
		if len(group) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, Element{Class: types.ClassBlank})
		}
		out = append(out, group...)
	}
	return out, true
}

func flatten(frames []*Frame, tc dictionary.TypeCheck) ([]Element, bool) {
	var out []Element
	for _, x := range frames {
		if tc.CanPlace(x.class) {
			out = append(out, x.Element())
			continue
		}
		cs := x.Canvases()
		if len(cs) == 0 {
			return nil, false
		}
		for _, c := range cs {
			sub, ok := flatten(c.frames, tc)
			if !ok {
				return nil, false
			}
			out = append(out, sub...)
		}
	}
	return out, true
}

// PullUpContents replaces f with its contents and focuses the cursor
// before them.
func (f *Frame) PullUpContents() bool {
	if !f.CanPullUp() {
		return false
	}
	parent := f.parent
	els, _ := f.pulledContents(parent.check())
	before := f.CursorBefore()
	f.doc.perform(func() {
		before.RequestFocus()
		must(parent.Remove(f))
		must(parent.InsertFramesAfter(before, f.doc.buildAll(els)))
	})
	before.RequestFocus()
	return true
}
