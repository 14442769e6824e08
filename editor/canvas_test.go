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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

func TestEmptyCanvas(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	checkInvariant(t, body)
	if body.Len() != 0 || len(body.Cursors()) != 1 {
		t.Errorf("New canvas has %d frames and %d cursors", body.Len(), len(body.Cursors()))
	}
}

func TestInsertBeforeAndAfter(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	c0 := body.FirstCursor()

	a := d.NewFrame(types.KindCall)
	if err := body.InsertBefore(a, nil); err != nil {
		t.Fatalf("InsertBefore failed: %+v", err)
	}
	// the given cursor is pushed after the new frame
	if body.CursorAfter(a) != c0 {
		t.Errorf("Cursor did not end up after the inserted frame")
	}

	b := d.NewFrame(types.KindReturn)
	if err := body.InsertAfter(b, nil); err != nil {
		t.Fatalf("InsertAfter failed: %+v", err)
	}
	c := d.NewFrame(types.KindBreak)
	if err := body.InsertBefore(c, nil); err != nil {
		t.Fatalf("InsertBefore failed: %+v", err)
	}
	d2 := d.NewFrame(types.KindThrow)
	if err := body.InsertAfter(d2, c0); err != nil {
		t.Fatalf("InsertAfter failed: %+v", err)
	}
	checkInvariant(t, body)
	want := []types.Class{types.ClassBreak, types.ClassCall, types.ClassThrow, types.ClassReturn}
	if diff := cmp.Diff(want, classes(body)); diff != "" {
		t.Errorf("Unexpected frame order (-want +got):\n%s", diff)
	}
	if body.CursorBefore(d2) != c0 {
		t.Errorf("InsertAfter moved the given cursor")
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	add(t, body, types.KindCall)
	add(t, body, types.KindReturn)
	cursors := body.Cursors()
	frames := body.Frames()

	c := cursors[1]
	f := d.NewFrame(types.KindWhile)
	if err := body.InsertBefore(f, c); err != nil {
		t.Fatalf("InsertBefore failed: %+v", err)
	}
	checkInvariant(t, body)
	if err := body.Remove(f); err != nil {
		t.Fatalf("Remove failed: %+v", err)
	}
	checkInvariant(t, body)
	// the cursor inserted before f survives in the place of c
	got := body.Cursors()
	if len(got) != len(cursors) {
		t.Fatalf("Round trip left %d cursors, expected %d", len(got), len(cursors))
	}
	if got[1] == c {
		t.Errorf("Cursor after the removed frame was kept")
	}
	keep := func(cs []*Cursor) []*Cursor {
		return append(append([]*Cursor{}, cs[:1]...), cs[2:]...)
	}
	if diff := cmp.Diff(keep(cursors), keep(got), identity); diff != "" {
		t.Errorf("Other cursors changed after round trip:\n%s", diff)
	}
	if diff := cmp.Diff(frames, body.Frames(), identity); diff != "" {
		t.Errorf("Frames changed after round trip:\n%s", diff)
	}
}

func TestRemoveDestroysFollowingCursor(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	f0 := add(t, body, types.KindCall)
	f1 := add(t, body, types.KindCall)
	f2 := add(t, body, types.KindCall)
	cs := body.Cursors()
	c0, c1, c2, c3 := cs[0], cs[1], cs[2], cs[3]

	if err := body.Remove(f1); err != nil {
		t.Fatalf("Remove failed: %+v", err)
	}
	checkInvariant(t, body)
	got := body.Cursors()
	if len(got) != 3 || got[0] != c0 || got[1] != c1 || got[2] != c3 {
		t.Errorf("Unexpected cursors after removal")
	}
	if body.IndexOfCursor(c2) != -1 {
		t.Errorf("Cursor after the removed frame survived")
	}
	frames := body.Frames()
	if len(frames) != 2 || frames[0] != f0 || frames[1] != f2 {
		t.Errorf("Unexpected frames after removal")
	}
}

func TestInsertFailures(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	inserted := add(t, body, types.KindCall)
	other := methodBody(t, d)

	removed := add(t, other, types.KindCall)
	if err := other.Remove(removed); err != nil {
		t.Fatalf("Remove failed: %+v", err)
	}
	foreign := NewDocument(dictionary.Default()).NewFrame(types.KindCall)

	tests := []struct {
		name   string
		frame  *Frame
		cursor *Cursor
		want   error
	}{
		{"nil", nil, nil, ErrNilFrame},
		{"parented", inserted, nil, ErrHasParent},
		{"method in statements", d.NewFrame(types.KindMethod), nil, ErrNotAccepted},
		{"foreign cursor", d.NewFrame(types.KindCall), other.FirstCursor(), ErrForeignCursor},
		{"removed", removed, nil, ErrDisposed},
		{"other document", foreign, nil, ErrForeignFrame},
	}
	for _, tc := range tests {
		before := body.Cursors()
		if err := body.InsertBefore(tc.frame, tc.cursor); !errors.Is(err, tc.want) {
			t.Errorf("%s: InsertBefore returned %v, expected %v", tc.name, err, tc.want)
		}
		if err := body.InsertAfter(tc.frame, tc.cursor); !errors.Is(err, tc.want) {
			t.Errorf("%s: InsertAfter returned %v, expected %v", tc.name, err, tc.want)
		}
		if len(body.Cursors()) != len(before) {
			t.Errorf("%s: failed insertion changed the canvas", tc.name)
		}
	}
	if err := body.Remove(d.NewFrame(types.KindCall)); !errors.Is(err, ErrForeignFrame) {
		t.Errorf("Remove of a frame from elsewhere returned %v", err)
	}
}

func TestParentLifecycle(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	f := d.NewFrame(types.KindWhile)
	inner := d.NewFrame(types.KindCall)
	if f.Parent() != nil {
		t.Errorf("New frame has a parent")
	}
	if err := body.InsertAfter(f, nil); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	if err := f.FirstCanvas().InsertAfter(inner, nil); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	if f.Parent() != body || inner.ParentFrame() != f {
		t.Errorf("Inserted frames have the wrong parents")
	}
	live := d.LiveFrames()
	if err := body.Remove(f); err != nil {
		t.Fatalf("Remove failed: %+v", err)
	}
	if f.Parent() != nil {
		t.Errorf("Removed frame still has a parent")
	}
	if !f.IsDisposed() || !inner.IsDisposed() {
		t.Errorf("Removed frames were not cleaned up")
	}
	if d.LiveFrames() != live-2 {
		t.Errorf("Document still holds %d frames, expected %d", d.LiveFrames(), live-2)
	}
	if d.FrameByID(f.ID()) != nil {
		t.Errorf("Removed frame is still registered")
	}
}

func TestReplace(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	old := add(t, body, types.KindCall)
	add(t, body, types.KindReturn)
	cursors := body.Cursors()

	repl := d.NewFrame(types.KindWhile)
	if err := body.Replace(old, repl); err != nil {
		t.Fatalf("Replace failed: %+v", err)
	}
	checkInvariant(t, body)
	if diff := cmp.Diff(cursors, body.Cursors(), identity); diff != "" {
		t.Errorf("Replace changed the cursors:\n%s", diff)
	}
	if body.Frames()[0] != repl || old.Parent() != nil || !old.IsDisposed() {
		t.Errorf("Replace did not swap the frames")
	}
	if s := d.FocusedSlot(); s == nil || s.EnclosingFrame() != repl {
		t.Errorf("Replacement did not receive focus")
	}
}

func TestSyntheticParent(t *testing.T) {
	d, _ := setup(t)
	p := &container{}
	c := NewCanvas(d, p, types.PartBody)
	f := d.NewFrame(types.KindCall)
	if err := c.InsertAfter(f, nil); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	if p.changes != 1 {
		t.Errorf("Parent saw %d changes, expected 1", p.changes)
	}
	if f.ParentFrame() != nil {
		t.Errorf("Frame in a synthetic container has a parent frame")
	}
	if c.PrevCursor(c.FirstCursor(), true) != nil || c.NextCursor(c.LastCursor(), true) != nil {
		t.Errorf("Navigation left a top level container")
	}
	if err := c.InsertAfter(d.NewFrame(types.KindMethod), nil); !errors.Is(err, ErrNotAccepted) {
		t.Errorf("Container accepted a method: %v", err)
	}
}

// container is a top level canvas parent holding statements.
type container struct {
	changes int
}

func (p *container) CheckCanvas(c *Canvas) dictionary.TypeCheck {
	return dictionary.Check(types.RoleStatements)
}
func (p *container) CursorBeforeCanvas(c *Canvas) *Cursor                { return nil }
func (p *container) CursorAfterCanvas(c *Canvas) *Cursor                 { return nil }
func (p *container) InnerExtensions(c *Canvas, cur *Cursor) []Extension { return nil }
func (p *container) EnclosingFrame() *Frame                              { return nil }
func (p *container) ModifiedCanvasContent(c *Canvas)                     { p.changes++ }

func TestModifiedOncePerMutation(t *testing.T) {
	d, w := setup(t)
	body := methodBody(t, d)
	w.modified = 0

	add(t, body, types.KindCall)
	if w.modified != 1 {
		t.Errorf("Insert sent %d notifications", w.modified)
	}

	w.modified = 0
	body.LastCursor().RequestFocus()
	d.KeyTyped('w')
	if w.modified != 1 {
		t.Errorf("Typed insertion sent %d notifications", w.modified)
	}

	w.modified = 0
	while := body.Frames()[1]
	add(t, while.FirstCanvas(), types.KindCall)
	add(t, while.FirstCanvas(), types.KindReturn)
	w.modified = 0
	if !while.PullUpContents() {
		t.Fatalf("Pull up failed")
	}
	if w.modified != 1 {
		t.Errorf("Pull up sent %d notifications", w.modified)
	}
}
