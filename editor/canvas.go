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

var (
	ErrNilFrame      = errors.New("nil frame")
	ErrHasParent     = errors.New("frame already has a parent canvas")
	ErrNotAccepted   = errors.New("frame not accepted by canvas")
	ErrForeignCursor = errors.New("cursor does not belong to canvas")
	ErrForeignFrame  = errors.New("frame does not belong to canvas")
	ErrDisposed      = errors.New("frame was cleaned up")
)

// must panics on errors that indicate a broken invariant.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// A Canvas is an ordered region of frames with a cursor before, between
// and after them: cursors[i] is before frames[i] and cursors[i+1] after it.
type Canvas struct {
	id      int
	doc     *Document
	parent  CanvasParent
	part    types.Part
	frames  []*Frame
	cursors []*Cursor
	showing bool
}

// NewCanvas creates an empty canvas holding a single cursor.
func NewCanvas(d *Document, parent CanvasParent, part types.Part) *Canvas {
	c := &Canvas{id: d.allocID(), doc: d, parent: parent, part: part, showing: true}
	c.cursors = []*Cursor{c.newCursor()}
	return c
}

func (c *Canvas) newCursor() *Cursor {
	return &Cursor{id: c.doc.allocID(), canvas: c}
}

func (c *Canvas) ID() int {
	return c.id
}

func (c *Canvas) Document() *Document {
	return c.doc
}

func (c *Canvas) Part() types.Part {
	return c.part
}

func (c *Canvas) Parent() CanvasParent {
	return c.parent
}

// Frame returns the frame that owns the canvas, if any.
func (c *Canvas) Frame() *Frame {
	if c.parent == nil {
		return nil
	}
	return c.parent.EnclosingFrame()
}

func (c *Canvas) IsShowing() bool {
	return c.showing
}

func (c *Canvas) SetShowing(showing bool) {
	c.showing = showing
}

// Accepts reports whether frames of class cl may be placed in c.
func (c *Canvas) Accepts(cl types.Class) bool {
	return c.check().CanPlace(cl)
}

func (c *Canvas) check() dictionary.TypeCheck {
	if c.parent == nil {
		return dictionary.Nothing()
	}
	return c.parent.CheckCanvas(c)
}

// Frames returns a copy of the canvas frames.
func (c *Canvas) Frames() []*Frame {
	return append([]*Frame(nil), c.frames...)
}

// Cursors returns a copy of the canvas cursors.
func (c *Canvas) Cursors() []*Cursor {
	return append([]*Cursor(nil), c.cursors...)
}

func (c *Canvas) Len() int {
	return len(c.frames)
}

func (c *Canvas) FirstCursor() *Cursor {
	return c.cursors[0]
}

func (c *Canvas) LastCursor() *Cursor {
	return c.cursors[len(c.cursors)-1]
}

// IndexOfCursor returns the position of cur, or -1.
func (c *Canvas) IndexOfCursor(cur *Cursor) int {
	for i, x := range c.cursors {
		if x == cur {
			return i
		}
	}
	return -1
}

func (c *Canvas) indexOfFrame(f *Frame) int {
	for i, x := range c.frames {
		if x == f {
			return i
		}
	}
	return -1
}

func (c *Canvas) mustCursor(cur *Cursor) int {
	i := c.IndexOfCursor(cur)
	if i < 0 {
		panic(ErrForeignCursor)
	}
	return i
}

// CursorBefore returns the cursor immediately before f.
func (c *Canvas) CursorBefore(f *Frame) *Cursor {
	i := c.indexOfFrame(f)
	if i < 0 {
		panic(ErrForeignFrame)
	}
	return c.cursors[i]
}

// CursorAfter returns the cursor immediately after f.
func (c *Canvas) CursorAfter(f *Frame) *Cursor {
	i := c.indexOfFrame(f)
	if i < 0 {
		panic(ErrForeignFrame)
	}
	return c.cursors[i+1]
}

// FrameBefore returns the frame immediately before cur, or nil.
func (c *Canvas) FrameBefore(cur *Cursor) *Frame {
	i := c.mustCursor(cur)
	if i == 0 {
		return nil
	}
	return c.frames[i-1]
}

// FrameAfter returns the frame immediately after cur, or nil.
func (c *Canvas) FrameAfter(cur *Cursor) *Frame {
	i := c.mustCursor(cur)
	if i == len(c.frames) {
		return nil
	}
	return c.frames[i]
}

// FramesAfter returns the frames following cur.
func (c *Canvas) FramesAfter(cur *Cursor) []*Frame {
	i := c.mustCursor(cur)
	return append([]*Frame(nil), c.frames[i:]...)
}

// IsAlmostBlank reports whether the canvas holds only blank frames.
func (c *Canvas) IsAlmostBlank() bool {
	for _, f := range c.frames {
		if f.class != types.ClassBlank {
			return false
		}
	}
	return true
}

func (c *Canvas) accept(f *Frame) error {
	switch {
	case f == nil:
		return ErrNilFrame
	case f.disposed:
		return fmt.Errorf("%w: %s %d", ErrDisposed, f.class, f.id)
	case f.parent != nil:
		return fmt.Errorf("%w: %s %d", ErrHasParent, f.class, f.id)
	case f.doc != c.doc:
		return fmt.Errorf("%w: %s %d is from another document", ErrForeignFrame, f.class, f.id)
	case !c.check().CanPlace(f.class):
		return fmt.Errorf("%w: %s", ErrNotAccepted, f.class)
	}
	return nil
}

func (c *Canvas) cursorIndexOr(cur *Cursor, missing int) (int, error) {
	if cur == nil {
		return missing, nil
	}
	if cur.canvas != c {
		return 0, ErrForeignCursor
	}
	i := c.IndexOfCursor(cur)
	if i < 0 {
		return 0, ErrForeignCursor
	}
	return i, nil
}

// InsertBefore inserts f immediately before cur, or at the start when
// cur is nil. A new cursor goes before f; cur ends up after it.
func (c *Canvas) InsertBefore(f *Frame, cur *Cursor) error {
	if err := c.accept(f); err != nil {
		return err
	}
	i, err := c.cursorIndexOr(cur, 0)
	if err != nil {
		return err
	}
	c.splice(i, f, c.newCursor(), i)
	return nil
}

// InsertAfter inserts f immediately after cur, or at the end when cur is
// nil. A new cursor goes after f; cur stays before it.
func (c *Canvas) InsertAfter(f *Frame, cur *Cursor) error {
	if err := c.accept(f); err != nil {
		return err
	}
	i, err := c.cursorIndexOr(cur, len(c.cursors)-1)
	if err != nil {
		return err
	}
	c.splice(i, f, c.newCursor(), i+1)
	return nil
}

func (c *Canvas) splice(fi int, f *Frame, cur *Cursor, ci int) {
	c.frames = append(c.frames, nil)
	copy(c.frames[fi+1:], c.frames[fi:])
	c.frames[fi] = f
	c.cursors = append(c.cursors, nil)
	copy(c.cursors[ci+1:], c.cursors[ci:])
	c.cursors[ci] = cur
	f.parent = c
	c.changed()
}

// InsertFramesAfter inserts frames in order after cur. It stops at the
// first frame that cannot be inserted.
func (c *Canvas) InsertFramesAfter(cur *Cursor, frames []*Frame) error {
	for _, f := range frames {
		if err := c.InsertAfter(f, cur); err != nil {
			return err
		}
		cur = c.CursorAfter(f)
	}
	return nil
}

// Remove unlinks f. The cursor after f is destroyed and f is cleaned up;
// f can't be inserted again.
func (c *Canvas) Remove(f *Frame) error {
	if f == nil {
		return ErrNilFrame
	}
	i := c.indexOfFrame(f)
	if i < 0 {
		return ErrForeignFrame
	}
	f.cleanup()
	dead := c.cursors[i+1]
	c.frames = append(c.frames[:i], c.frames[i+1:]...)
	c.cursors = append(c.cursors[:i+1], c.cursors[i+2:]...)
	f.parent = nil
	c.doc.detached(f, dead, c.cursors[i])
	c.changed()
	return nil
}

// RemoveAll removes every frame.
func (c *Canvas) RemoveAll() {
	for len(c.frames) > 0 {
		must(c.Remove(c.frames[len(c.frames)-1]))
	}
}

// Replace puts repl where old was, leaving the cursors alone, and gives
// repl initial focus.
func (c *Canvas) Replace(old, repl *Frame) error {
	if old == nil {
		return ErrNilFrame
	}
	i := c.indexOfFrame(old)
	if i < 0 {
		return ErrForeignFrame
	}
	if err := c.accept(repl); err != nil {
		return err
	}
	old.cleanup()
	c.frames[i] = repl
	old.parent = nil
	repl.parent = c
	c.doc.detached(old, nil, c.cursors[i])
	c.changed()
	if !repl.FocusWhenJustAdded() {
		c.cursors[i+1].RequestFocus()
	}
	return nil
}

func (c *Canvas) changed() {
	c.validate()
	if c.parent != nil {
		c.parent.ModifiedCanvasContent(c)
	}
}

func (c *Canvas) validate() {
	if len(c.cursors) != len(c.frames)+1 {
		panic(fmt.Sprintf("canvas %d has %d cursors and %d frames", c.id, len(c.cursors), len(c.frames)))
	}
	seen := make(map[*Cursor]bool, len(c.cursors))
	for _, cur := range c.cursors {
		if cur == nil || cur.canvas != c || seen[cur] {
			panic(fmt.Sprintf("canvas %d has a bad cursor", c.id))
		}
		seen[cur] = true
	}
	for _, f := range c.frames {
		if f == nil || f.parent != c {
			panic(fmt.Sprintf("canvas %d has a frame that is not its child", c.id))
		}
	}
}

// PrevCursor is the cursor focus moves to going up from cur. When
// canChangeLevel is set it enters the frame above; otherwise it stays
// among this canvas's cursors until it leaves at the top.
func (c *Canvas) PrevCursor(cur *Cursor, canChangeLevel bool) *Cursor {
	i := c.mustCursor(cur)
	if i == 0 {
		if c.parent == nil {
			return nil
		}
		return c.parent.CursorBeforeCanvas(c)
	}
	if canChangeLevel {
		if in := c.frames[i-1].LastInternalCursor(); in != nil {
			return in
		}
	}
	return c.cursors[i-1]
}

// NextCursor is PrevCursor going down.
func (c *Canvas) NextCursor(cur *Cursor, canChangeLevel bool) *Cursor {
	i := c.mustCursor(cur)
	if i == len(c.frames) {
		if c.parent == nil {
			return nil
		}
		return c.parent.CursorAfterCanvas(c)
	}
	if canChangeLevel {
		if in := c.frames[i].FirstInternalCursor(); in != nil {
			return in
		}
	}
	return c.cursors[i+1]
}

func (c *Canvas) focusLeftEndFromPrev() bool   { return c.focusFirst() }
func (c *Canvas) focusTopEndFromPrev() bool    { return c.focusFirst() }
func (c *Canvas) focusRightEndFromNext() bool  { return c.focusLast() }
func (c *Canvas) focusBottomEndFromNext() bool { return c.focusLast() }

func (c *Canvas) focusFirst() bool {
	if !c.showing {
		return false
	}
	c.FirstCursor().RequestFocus()
	return true
}

func (c *Canvas) focusLast() bool {
	if !c.showing {
		return false
	}
	c.LastCursor().RequestFocus()
	return true
}
