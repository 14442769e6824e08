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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

// threeCalls fills a body with three calls and focuses the end.
func threeCalls(t *testing.T, d *Document) (*Canvas, []*Frame) {
	body := methodBody(t, d)
	var frames []*Frame
	for _, text := range []string{"a()", "b()", "c()"} {
		f := add(t, body, types.KindCall)
		f.Slots()[0].SetText(text)
		frames = append(frames, f)
	}
	body.LastCursor().RequestFocus()
	return body, frames
}

func TestSelectUp(t *testing.T) {
	d, _ := setup(t)
	body, frames := threeCalls(t, d)
	d.SelectUp()
	d.SelectUp()
	if diff := cmp.Diff(frames[1:], d.Selection().Frames(), identity); diff != "" {
		t.Errorf("Unexpected selection:\n%s", diff)
	}
	if d.FocusedCursor() != body.CursorBefore(frames[1]) {
		t.Errorf("Focus did not follow the selection")
	}
	d.KeyPressed(types.KeyArrowDown, types.ModShift)
	if diff := cmp.Diff(frames[2:], d.Selection().Frames(), identity); diff != "" {
		t.Errorf("Selecting down did not deselect:\n%s", diff)
	}
	d.KeyPressed(types.KeyEsc, 0)
	if !d.Selection().IsEmpty() || body.Len() != 3 {
		t.Errorf("Escape did not just clear the selection")
	}
}

func TestWrapSelection(t *testing.T) {
	d, _ := setup(t)
	body, frames := threeCalls(t, d)
	d.SelectUp()
	d.SelectUp()

	if !d.KeyTyped('w') {
		t.Fatalf("Wrapping key was not used")
	}
	want := []types.Class{types.ClassCall, types.ClassWhile}
	if diff := cmp.Diff(want, classes(body)); diff != "" {
		t.Fatalf("Unexpected body (-want +got):\n%s", diff)
	}
	w := body.Frames()[1]
	var texts []string
	for _, f := range w.FirstCanvas().Frames() {
		texts = append(texts, f.Slots()[0].Text())
	}
	if diff := cmp.Diff([]string{"b()", "c()"}, texts); diff != "" {
		t.Errorf("Wrapped frames differ (-want +got):\n%s", diff)
	}
	if !frames[1].IsDisposed() || !d.Selection().IsEmpty() {
		t.Errorf("Selection was not moved")
	}
	if s := d.FocusedSlot(); s == nil || s.EnclosingFrame() != w {
		t.Errorf("Focus is not on the new while")
	}
}

func TestToggleSelection(t *testing.T) {
	d, _ := setup(t)
	_, frames := threeCalls(t, d)
	d.SelectUp()
	d.SelectUp()

	d.KeyTyped(dictionary.ToggleKey)
	if diff := cmp.Diff([]bool{true, false, false}, enabledFlags(frames...)); diff != "" {
		t.Errorf("Unexpected flags (-want +got):\n%s", diff)
	}
	d.KeyTyped(dictionary.ToggleKey)
	if diff := cmp.Diff([]bool{true, true, true}, enabledFlags(frames...)); diff != "" {
		t.Errorf("Unexpected flags (-want +got):\n%s", diff)
	}
}

func TestDeleteSelection(t *testing.T) {
	d, _ := setup(t)
	body, frames := threeCalls(t, d)
	d.SelectUp()
	d.SelectUp()

	if !d.KeyPressed(types.KeyBackspace2, 0) {
		t.Fatalf("Backspace was not used")
	}
	if body.Len() != 1 || d.FocusedCursor() != body.CursorAfter(frames[0]) {
		t.Errorf("Selection was not deleted")
	}
}

func TestUnusedKeyClearsSelection(t *testing.T) {
	d, _ := setup(t)
	body, _ := threeCalls(t, d)
	d.SelectUp()
	if d.KeyTyped('q') {
		t.Errorf("Unbound key was used")
	}
	if !d.Selection().IsEmpty() || body.Len() != 3 {
		t.Errorf("Unbound key changed the document or kept the selection")
	}
}

func TestSelectionStaysInOneCanvas(t *testing.T) {
	d, _ := setup(t)
	body, frames := threeCalls(t, d)
	field := add(t, d.Root().CanvasFor(types.PartFields), types.KindField)
	s := d.Selection()
	s.toggle(frames[0])
	s.toggle(field)
	if diff := cmp.Diff([]*Frame{field}, s.Frames(), identity); diff != "" {
		t.Errorf("Selection spans canvases:\n%s", diff)
	}
	s.toggle(frames[1])
	if err := body.Remove(frames[1]); err != nil {
		t.Fatalf("Remove failed: %+v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("Selection kept a removed frame")
	}
}

func TestDeleteSelectionFromAnotherCanvas(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	add(t, body, types.KindCall)
	w := add(t, body, types.KindWhile)
	w.FirstCanvas().FirstCursor().RequestFocus()
	d.Selection().toggle(w)

	if d.KeyPressed(types.KeyBackspace2, 0) {
		t.Errorf("Backspace inside a selected frame was used")
	}
	if body.Len() != 2 || w.IsDisposed() {
		t.Errorf("Selection in another canvas was deleted")
	}
	if !d.Selection().IsEmpty() {
		t.Errorf("Selection was not cleared")
	}
	if d.FocusedCursor() != w.FirstCanvas().FirstCursor() {
		t.Errorf("Focus moved")
	}
}
