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
// Package history keeps undo and redo stacks for a document.
// An entry is a snapshot of the document and its focus taken when the
// outermost recording boundary of a change opened.
package history

import (
	"reflect"

	"github.com/timburks/stride/editor"
)

// DefaultLimit is the number of undo steps kept.
const DefaultLimit = 100

type state struct {
	element editor.Element
	focus   editor.Location
}

func capture(d *editor.Document) state {
	return state{element: d.Snapshot(), focus: d.FocusLocation()}
}

type History struct {
	doc   *editor.Document
	begin *state
	undo  []state // stack of states to undo to
	redo  []state
	limit int
}

// New creates a history and makes it the document's recorder.
func New(d *editor.Document) *History {
	h := &History{doc: d, limit: DefaultLimit}
	d.SetRecorder(h)
	return h
}

func (h *History) SetLimit(n int) {
	if n < 1 {
		n = 1
	}
	h.limit = n
	h.trim()
}

func (h *History) BeginRecordingState(d *editor.Document) {
	s := capture(d)
	h.begin = &s
}

// EndRecordingState saves the state from the start of the change, unless
// nothing changed.
func (h *History) EndRecordingState(d *editor.Document) {
	if h.begin == nil {
		return
	}
	before := *h.begin
	h.begin = nil
	if reflect.DeepEqual(before.element, d.Snapshot()) {
		return
	}
	h.undo = append(h.undo, before)
	h.redo = nil
	h.trim()
}

func (h *History) trim() {
	if extra := len(h.undo) - h.limit; extra > 0 {
		h.undo = append([]state(nil), h.undo[extra:]...)
	}
}

func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo returns the document to the state before the last change.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	last := len(h.undo) - 1
	target := h.undo[last]
	current := capture(h.doc)
	if !h.apply(target) {
		return false
	}
	h.undo = h.undo[:last]
	h.redo = append(h.redo, current)
	return true
}

// Redo reapplies the last undone change.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	last := len(h.redo) - 1
	target := h.redo[last]
	current := capture(h.doc)
	if !h.apply(target) {
		return false
	}
	h.redo = h.redo[:last]
	h.undo = append(h.undo, current)
	return true
}

func (h *History) apply(s state) bool {
	if !h.doc.Restore(s.element) {
		return false
	}
	h.doc.Selection().Clear()
	h.doc.RecallFocus(s.focus)
	return true
}

// Clear forgets every step.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
