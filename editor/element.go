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
	"errors"
	"fmt"

	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

var ErrBadElement = errors.New("invalid element")

// An Element describes a frame and everything inside it. Frames can be
// rebuilt from elements or restored to them.
type Element struct {
	Class    types.Class
	Disabled bool
	Final    bool
	Static   bool
	Items    []ItemElement
}

// An ItemElement describes a row (slot texts) or a canvas (frames).
type ItemElement struct {
	Part   types.Part
	Canvas bool
	Slots  []string
	Frames []Element
}

// Element describes f.
func (f *Frame) Element() Element {
	el := Element{Class: f.class, Disabled: !f.enabled, Final: f.final, Static: f.static}
	for _, it := range f.items {
		switch it := it.(type) {
		case *Row:
			item := ItemElement{Part: it.part}
			for _, s := range it.slots {
				item.Slots = append(item.Slots, s.text)
			}
			el.Items = append(el.Items, item)
		case *Canvas:
			el.Items = append(el.Items, ItemElement{Part: it.part, Canvas: true, Frames: elementsOf(it.frames)})
		}
	}
	return el
}

func elementsOf(frames []*Frame) []Element {
	var els []Element
	for _, f := range frames {
		els = append(els, f.Element())
	}
	return els
}

// checkElement reports why el can't be built into a canvas accepting tc.
// A nil tc means the element is a document root.
func checkElement(el Element, tc dictionary.TypeCheck) error {
	v, ok := variants[el.Class]
	if !ok {
		return fmt.Errorf("%w: unknown class %d", ErrBadElement, el.Class)
	}
	if tc == nil {
		if el.Class != types.ClassTopLevel {
			return fmt.Errorf("%w: %s can't be a root", ErrBadElement, el.Class)
		}
	} else if !tc.CanPlace(el.Class) {
		return fmt.Errorf("%w: %s", ErrNotAccepted, el.Class)
	}
	for _, item := range el.Items {
		if item.Canvas {
			role, ok := v.canvases[item.Part]
			if !ok {
				return fmt.Errorf("%w: %s has no canvas part %d", ErrBadElement, el.Class, item.Part)
			}
			for _, child := range item.Frames {
				if err := checkElement(child, dictionary.Check(role)); err != nil {
					return err
				}
			}
			continue
		}
		spec, ok := v.rows[item.Part]
		if !ok {
			return fmt.Errorf("%w: %s has no row part %d", ErrBadElement, el.Class, item.Part)
		}
		if len(item.Slots) != len(spec.slots) {
			return fmt.Errorf("%w: %s row has %d slots, expected %d", ErrBadElement, el.Class, len(item.Slots), len(spec.slots))
		}
	}
	return nil
}

// Build makes an unattached frame from el. The frame may go in any canvas
// that accepts its class.
func (d *Document) Build(el Element) (*Frame, error) {
	if el.Class == types.ClassTopLevel {
		return nil, fmt.Errorf("%w: %s can't be a child", ErrBadElement, el.Class)
	}
	if err := checkElement(el, anyClass{}); err != nil {
		return nil, err
	}
	return d.build(el), nil
}

// anyClass accepts every frame class.
type anyClass struct{}

func (anyClass) CanInsert(types.Kind) bool { return true }
func (anyClass) CanPlace(types.Class) bool { return true }

func (d *Document) buildAll(els []Element) []*Frame {
	var frames []*Frame
	for _, el := range els {
		frames = append(frames, d.build(el))
	}
	return frames
}

// build assumes el was checked.
func (d *Document) build(el Element) *Frame {
	f := d.newFrame(el.Class)
	f.items = nil
	for _, item := range el.Items {
		f.items = append(f.items, f.newItem(layoutItem{part: item.Part, canvas: item.Canvas}))
	}
	f.apply(el)
	return f
}

// apply copies el into f, which already has el's shape.
func (f *Frame) apply(el Element) {
	f.final = el.Final
	f.static = el.Static
	if f.enabled == el.Disabled {
		f.setEnabled(!el.Disabled)
	}
	for i, it := range f.items {
		switch it := it.(type) {
		case *Row:
			for j, s := range it.slots {
				s.text = el.Items[i].Slots[j]
			}
		case *Canvas:
			it.restore(el.Items[i].Frames)
		}
	}
	f.alwaysBlank = f.IsAlmostBlank()
}

// sameShape reports whether f has el's class and item layout.
func (f *Frame) sameShape(el Element) bool {
	if f.class != el.Class || len(f.items) != len(el.Items) {
		return false
	}
	for i, it := range f.items {
		_, isCanvas := it.(*Canvas)
		if it.Part() != el.Items[i].Part || isCanvas != el.Items[i].Canvas {
			return false
		}
	}
	return true
}

// restore makes the canvas hold frames described by els, keeping frames
// that can be restored in place.
func (c *Canvas) restore(els []Element) {
	if len(els) == len(c.frames) {
		same := true
		for i, f := range c.frames {
			same = same && f.sameShape(els[i])
		}
		if same {
			for i, f := range c.frames {
				f.apply(els[i])
			}
			return
		}
	}
	c.RemoveAll()
	must(c.InsertFramesAfter(c.FirstCursor(), c.doc.buildAll(els)))
}

// TryRestoreTo makes f match el. It returns false, changing nothing, if
// el describes a different kind of frame or an invalid tree.
func (f *Frame) TryRestoreTo(el Element) bool {
	if f.disposed || !f.sameShape(el) {
		return false
	}
	tc := dictionary.TypeCheck(anyClass{})
	if f == f.doc.root {
		tc = nil
	} else if f.parent != nil {
		tc = f.parent.check()
	}
	if err := checkElement(el, tc); err != nil {
		return false
	}
	f.doc.perform(func() {
		f.apply(el)
		f.doc.modified(f)
	})
	return true
}

// Snapshot describes the whole document.
func (d *Document) Snapshot() Element {
	return d.root.Element()
}

// Restore makes the document match el without recording an undo step.
func (d *Document) Restore(el Element) bool {
	d.restoring = true
	defer func() { d.restoring = false }()
	return d.root.TryRestoreTo(el)
}

// A Location addresses a focus target by position, so focus can be
// recalled after the frames holding it were rebuilt. Path alternates item
// and frame indexes from the root; Index is the cursor index when the
// path ends at a canvas and the slot index when it ends at a row.
type Location struct {
	Path  []int
	Index int
}

// FocusLocation returns the location of the focus.
func (d *Document) FocusLocation() Location {
	var path []int
	var index int
	var f *Frame
	switch t := d.focus.(type) {
	case *Cursor:
		index = t.Index()
		f = t.canvas.Frame()
		if f == nil {
			return Location{}
		}
		path = []int{f.itemIndex(t.canvas)}
	case *Slot:
		index = t.row.slotIndex(t)
		f = t.row.frame
		path = []int{f.itemIndex(t.row)}
	default:
		return Location{}
	}
	for f != d.root {
		c := f.parent
		if c == nil || c.Frame() == nil {
			return Location{}
		}
		p := c.Frame()
		path = append([]int{p.itemIndex(c), c.indexOfFrame(f)}, path...)
		f = p
	}
	return Location{Path: path, Index: index}
}

// RecallFocus focuses the target at l. It returns false if l no longer
// addresses anything.
func (d *Document) RecallFocus(l Location) bool {
	if len(l.Path)%2 != 1 {
		return false
	}
	f := d.root
	for i := 0; i < len(l.Path); i += 2 {
		if l.Path[i] < 0 || l.Path[i] >= len(f.items) {
			return false
		}
		it := f.items[l.Path[i]]
		if i == len(l.Path)-1 {
			switch it := it.(type) {
			case *Canvas:
				if l.Index < 0 || l.Index >= len(it.cursors) {
					return false
				}
				it.cursors[l.Index].RequestFocus()
			case *Row:
				if l.Index < 0 || l.Index >= len(it.slots) {
					return false
				}
				it.slots[l.Index].RequestFocus()
			}
			return true
		}
		c, ok := it.(*Canvas)
		if !ok || l.Path[i+1] < 0 || l.Path[i+1] >= len(c.frames) {
			return false
		}
		f = c.frames[l.Path[i+1]]
	}
	return false
}
