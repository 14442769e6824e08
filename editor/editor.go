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

// DefaultCatalogTrigger is the number of consecutive unrecognized keys
// at one cursor after which the catalog is shown.
const DefaultCatalogTrigger = 2

// An Observer is told about changes to a Document.
type Observer interface {
	FrameModified(f *Frame)
	FocusChanged(target Focusable)
	ShowCatalog(c *Cursor)
}

// A Recorder brackets undoable changes. Only the outermost begin and end
// of nested recording reach the Recorder.
type Recorder interface {
	BeginRecordingState(d *Document)
	EndRecordingState(d *Document)
}

// A Focusable is a cursor or a content slot.
type Focusable interface {
	RequestFocus()
	IsFocused() bool
	EnclosingFrame() *Frame
}

// The Document owns a tree of frames rooted at a class frame. It assigns
// ids, keeps the registry of live frames, and holds the focus, the
// selection and the recording state.
type Document struct {
	dict      *dictionary.Dictionary
	root      *Frame
	frames    map[int]*Frame // live frames by id
	lastID    int
	focus     Focusable
	selection Selection
	recorder  Recorder
	observers []Observer
	depth     int    // recording depth
	pending   *Frame // modified frame waiting for the outermost end
	restoring bool
	trigger   int
	heights   cursorHeights
}

// NewDocument creates a document holding an empty class.
func NewDocument(dict *dictionary.Dictionary) *Document {
	d := &Document{
		dict:    dict,
		frames:  make(map[int]*Frame),
		trigger: DefaultCatalogTrigger,
	}
	d.selection.doc = d
	d.root = d.newFrame(types.ClassTopLevel)
	d.root.fresh = false
	d.setFocus(d.root.CanvasFor(types.PartFields).FirstCursor())
	return d
}

func (d *Document) allocID() int {
	d.lastID++
	return d.lastID
}

func (d *Document) Root() *Frame {
	return d.root
}

func (d *Document) Dictionary() *dictionary.Dictionary {
	return d.dict
}

// SetDictionary replaces the frame catalog, for example after the
// configuration was reloaded.
func (d *Document) SetDictionary(dict *dictionary.Dictionary) {
	d.dict = dict
}

func (d *Document) SetRecorder(r Recorder) {
	d.recorder = r
}

func (d *Document) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

func (d *Document) RemoveObserver(o Observer) error {
	for i, x := range d.observers {
		if x == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("can't find observer in Document.RemoveObserver")
}

// SetCatalogTrigger sets how many consecutive misses show the catalog.
func (d *Document) SetCatalogTrigger(n int) {
	if n < 1 {
		n = 1
	}
	d.trigger = n
}

// FrameByID returns a live frame.
func (d *Document) FrameByID(id int) *Frame {
	return d.frames[id]
}

// LiveFrames returns the number of frames that have not been cleaned up.
func (d *Document) LiveFrames() int {
	return len(d.frames)
}

func (d *Document) Focus() Focusable {
	return d.focus
}

// FocusedCursor returns the focused cursor, or nil when a slot is focused.
func (d *Document) FocusedCursor() *Cursor {
	c, _ := d.focus.(*Cursor)
	return c
}

// FocusedSlot returns the focused slot, or nil when a cursor is focused.
func (d *Document) FocusedSlot() *Slot {
	s, _ := d.focus.(*Slot)
	return s
}

func (d *Document) Selection() *Selection {
	return &d.selection
}

func (d *Document) setFocus(t Focusable) {
	if t == nil || t == d.focus {
		return
	}
	old := d.focus
	d.focus = t
	if c, ok := old.(*Cursor); ok {
		c.misses = 0
	}
	// only the new focus's frame and its ancestors stay fresh
	keep := map[*Frame]bool{}
	for f := t.EnclosingFrame(); f != nil; f = f.ParentFrame() {
		keep[f] = true
	}
	for _, f := range d.frames {
		if f.fresh && !keep[f] {
			f.markNonFresh()
		}
	}
	d.heights.focusMoved(t)
	for _, o := range d.observers {
		o.FocusChanged(t)
	}
}

// focusInside reports whether the focus is within f.
func (d *Document) focusInside(f *Frame) bool {
	if d.focus == nil {
		return false
	}
	for g := d.focus.EnclosingFrame(); g != nil; g = g.ParentFrame() {
		if g == f {
			return true
		}
	}
	return false
}

// detached is called by a canvas after f was unlinked. Focus held by a
// destroyed cursor or by anything inside f moves to fallback.
func (d *Document) detached(f *Frame, dead *Cursor, fallback *Cursor) {
	if (dead != nil && d.focus == Focusable(dead)) || d.focusInside(f) {
		d.setFocus(fallback)
	}
	d.selection.forget(f)
}

// BeginRecordingState opens an undo boundary. Boundaries nest; only the
// outermost reaches the Recorder.
func (d *Document) BeginRecordingState() {
	d.depth++
	if d.depth == 1 && d.recorder != nil && !d.restoring {
		d.recorder.BeginRecordingState(d)
	}
}

// EndRecordingState closes an undo boundary. Modified notifications held
// back while recording are sent when the outermost boundary closes.
func (d *Document) EndRecordingState() {
	if d.depth == 0 {
		panic("EndRecordingState without BeginRecordingState")
	}
	d.depth--
	if d.depth > 0 {
		return
	}
	if f := d.pending; f != nil {
		d.pending = nil
		d.fireModified(f)
	}
	if d.recorder != nil && !d.restoring {
		d.recorder.EndRecordingState(d)
	}
}

// Recording reports whether an undo boundary is open.
func (d *Document) Recording() bool {
	return d.depth > 0
}

// perform runs fn inside one undo boundary.
func (d *Document) perform(fn func()) {
	d.BeginRecordingState()
	defer d.EndRecordingState()
	fn()
}

func (d *Document) modified(f *Frame) {
	if d.depth > 0 {
		d.pending = f
		return
	}
	d.fireModified(f)
}

func (d *Document) fireModified(f *Frame) {
	for _, o := range d.observers {
		o.FrameModified(f)
	}
}

func (d *Document) showCatalog(c *Cursor) {
	for _, o := range d.observers {
		o.ShowCatalog(c)
	}
}

// NewFrame builds an unattached frame of the given kind.
func (d *Document) NewFrame(k types.Kind) *Frame {
	return d.newFrame(k.Class())
}

// A CatalogItem is one line of the catalog shown at a cursor.
type CatalogItem struct {
	Key       rune
	Label     string
	Extension bool
}

// Catalog lists what can be typed at a cursor: the extensions that apply
// there, then the frame kinds the canvas accepts.
func (d *Document) Catalog(c *Cursor) []CatalogItem {
	var items []CatalogItem
	add := func(exts []Extension, tag types.Source) {
		for _, e := range exts {
			if e.Sources.Has(tag) {
				items = append(items, CatalogItem{Key: e.Key, Label: e.Label, Extension: true})
			}
		}
	}
	if p := c.canvas.parent; p != nil {
		tag := types.SourceInsideLater
		if c == c.canvas.FirstCursor() {
			tag = types.SourceInsideFirst
		}
		add(p.InnerExtensions(c.canvas, c), tag)
	}
	if f := c.FrameAfter(); f != nil {
		add(f.Extensions(), types.SourceBefore)
	}
	if f := c.FrameBefore(); f != nil {
		add(f.Extensions(), types.SourceAfter)
	}
	for _, e := range d.dict.Insertable(c.canvas.check()) {
		items = append(items, CatalogItem{Key: e.Key, Label: e.Description})
	}
	return items
}
