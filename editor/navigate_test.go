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

	"github.com/timburks/stride/types"
)

// loopBody builds a method body holding call, while { return }, break.
func loopBody(t *testing.T, d *Document) (*Canvas, *Frame) {
	body := methodBody(t, d)
	add(t, body, types.KindCall)
	w := add(t, body, types.KindWhile)
	add(t, w.FirstCanvas(), types.KindReturn)
	add(t, body, types.KindBreak)
	return body, w
}

func TestUpDownThroughFrames(t *testing.T) {
	d, _ := setup(t)
	body, w := loopBody(t, d)
	inner := w.FirstCanvas()
	cs := body.Cursors()

	tests := []struct {
		name string
		from *Cursor
		key  types.Key
		mod  types.Modifier
		want *Cursor
	}{
		{"up into while", cs[2], types.KeyArrowUp, 0, inner.LastCursor()},
		{"down into while", cs[1], types.KeyArrowDown, 0, inner.FirstCursor()},
		{"up out of while", inner.FirstCursor(), types.KeyArrowUp, 0, cs[1]},
		{"down out of while", inner.LastCursor(), types.KeyArrowDown, 0, cs[2]},
		{"skip up over while", cs[2], types.KeyArrowUp, types.ModAlt, cs[1]},
		{"skip down over while", cs[1], types.KeyArrowDown, types.ModAlt, cs[2]},
		{"home", cs[2], types.KeyHome, 0, cs[0]},
		{"end", cs[1], types.KeyEnd, 0, cs[3]},
	}
	for _, tc := range tests {
		tc.from.RequestFocus()
		if !d.KeyPressed(tc.key, tc.mod) {
			t.Errorf("%s: key was not used", tc.name)
			continue
		}
		if got := d.FocusedCursor(); got != tc.want {
			t.Errorf("%s: focus ended at the wrong cursor", tc.name)
		}
	}
}

func TestDisabledFrameIsPassedOver(t *testing.T) {
	d, _ := setup(t)
	body, w := loopBody(t, d)
	w.SetFrameEnabled(false)
	cs := body.Cursors()

	cs[1].RequestFocus()
	d.KeyPressed(types.KeyArrowDown, 0)
	if d.FocusedCursor() != cs[2] {
		t.Errorf("Down entered a disabled frame")
	}
	d.KeyPressed(types.KeyArrowUp, 0)
	if d.FocusedCursor() != cs[1] {
		t.Errorf("Up entered a disabled frame")
	}
	d.KeyPressed(types.KeyArrowRight, 0)
	if d.FocusedCursor() != cs[2] {
		t.Errorf("Right entered a disabled frame")
	}
}

func TestNavigationStopsAtDocumentEdges(t *testing.T) {
	d, _ := setup(t)
	methodBody(t, d)
	root := d.Root()

	first := root.CanvasFor(types.PartImports).FirstCursor()
	first.RequestFocus()
	if d.KeyPressed(types.KeyArrowUp, 0) || d.FocusedCursor() != first {
		t.Errorf("Up from the first cursor moved")
	}
	last := root.CanvasFor(types.PartMethods).LastCursor()
	last.RequestFocus()
	if d.KeyPressed(types.KeyArrowDown, 0) || d.FocusedCursor() != last {
		t.Errorf("Down from the last cursor moved")
	}
}

func TestDownBetweenRootCanvases(t *testing.T) {
	d, _ := setup(t)
	root := d.Root()
	root.CanvasFor(types.PartImports).LastCursor().RequestFocus()
	d.KeyPressed(types.KeyArrowDown, 0)
	if d.FocusedCursor() != root.CanvasFor(types.PartFields).FirstCursor() {
		t.Errorf("Down did not reach the fields")
	}
}

func TestLeftRightThroughSlots(t *testing.T) {
	d, _ := setup(t)
	body, w := loopBody(t, d)
	call := body.Frames()[0]
	cs := body.Cursors()

	cs[1].RequestFocus()
	d.KeyPressed(types.KeyArrowLeft, 0)
	if s := d.FocusedSlot(); s == nil || s.EnclosingFrame() != call || s.Name() != "expression" {
		t.Fatalf("Left did not enter the call")
	}
	d.KeyPressed(types.KeyArrowRight, 0)
	if d.FocusedCursor() != cs[1] {
		t.Errorf("Right from the last slot did not leave the call")
	}

	d.KeyPressed(types.KeyArrowRight, 0)
	if s := d.FocusedSlot(); s == nil || s.EnclosingFrame() != w {
		t.Fatalf("Right did not enter the while")
	}
	d.KeyPressed(types.KeyArrowDown, 0)
	if d.FocusedCursor() != w.FirstCanvas().FirstCursor() {
		t.Errorf("Down from the condition did not reach the while body")
	}

	cs[0].RequestFocus()
	d.KeyPressed(types.KeyArrowLeft, 0)
	if s := d.FocusedSlot(); s == nil || s.Name() != "parameters" {
		t.Errorf("Left from the start of a body did not reach the method header")
	}
}

func TestSlotUpLeavesFrame(t *testing.T) {
	d, _ := setup(t)
	body, w := loopBody(t, d)
	w.Slots()[0].RequestFocus()
	d.KeyPressed(types.KeyArrowUp, 0)
	if d.FocusedCursor() != body.CursorBefore(w) {
		t.Errorf("Up from the condition did not reach the cursor before the while")
	}
}

func TestCursorHeights(t *testing.T) {
	d, _ := setup(t)
	body, w := loopBody(t, d)
	cs := body.Cursors()
	cs[1].RequestFocus()
	if d.CursorHeight(cs[1]) != FullHeight {
		t.Errorf("Focused cursor is hidden")
	}
	if d.CursorHeight(cs[2]) != HideHeight {
		t.Errorf("Unfocused cursor is shown")
	}
	empty := add(t, w.FirstCanvas(), types.KindWhile).FirstCanvas()
	if d.CursorHeight(empty.FirstCursor()) != FullHeight {
		t.Errorf("Cursor of an empty canvas is hidden")
	}
}
