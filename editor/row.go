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
	"strings"

	"github.com/timburks/stride/types"
)

// A Row is a line of a frame's content: a caption followed by slots.
type Row struct {
	frame   *Frame
	part    types.Part
	caption string
	slots   []*Slot
}

func newRow(f *Frame, part types.Part) *Row {
	spec := f.v.rows[part]
	r := &Row{frame: f, part: part, caption: spec.caption}
	for _, name := range spec.slots {
		r.slots = append(r.slots, &Slot{row: r, name: name, editable: f.enabled})
	}
	return r
}

func (r *Row) Part() types.Part {
	return r.part
}

func (r *Row) Caption() string {
	return r.caption
}

func (r *Row) Frame() *Frame {
	return r.frame
}

func (r *Row) Slots() []*Slot {
	return append([]*Slot(nil), r.slots...)
}

func (r *Row) slotIndex(s *Slot) int {
	for i, x := range r.slots {
		if x == s {
			return i
		}
	}
	return -1
}

func (r *Row) focusFirstSlot() bool {
	if len(r.slots) == 0 {
		return false
	}
	r.slots[0].RequestFocus()
	return true
}

func (r *Row) focusLastSlot() bool {
	if len(r.slots) == 0 {
		return false
	}
	r.slots[len(r.slots)-1].RequestFocus()
	return true
}

func (r *Row) focusLeftEndFromPrev() bool   { return r.focusFirstSlot() }
func (r *Row) focusRightEndFromNext() bool  { return r.focusLastSlot() }
func (r *Row) focusTopEndFromPrev() bool    { return r.focusFirstSlot() }
func (r *Row) focusBottomEndFromNext() bool { return r.focusFirstSlot() }

// focusLeft moves to the slot left of s, or out of the row.
func (r *Row) focusLeft(s *Slot) bool {
	if i := r.slotIndex(s); i > 0 {
		r.slots[i-1].RequestFocus()
		return true
	}
	return r.frame.FocusLeft(r)
}

// focusRight moves to the slot right of s, or out of the row.
func (r *Row) focusRight(s *Slot) bool {
	if i := r.slotIndex(s); i >= 0 && i < len(r.slots)-1 {
		r.slots[i+1].RequestFocus()
		return true
	}
	return r.frame.FocusRight(r)
}

// A Slot is an editable piece of text in a row. The editor treats slot
// content as opaque.
type Slot struct {
	row      *Row
	name     string
	text     string
	editable bool
}

func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) Text() string {
	return s.text
}

func (s *Slot) Row() *Row {
	return s.row
}

func (s *Slot) IsEditable() bool {
	return s.editable
}

func (s *Slot) IsBlank() bool {
	return strings.TrimSpace(s.text) == ""
}

func (s *Slot) EnclosingFrame() *Frame {
	return s.row.frame
}

func (s *Slot) RequestFocus() {
	s.row.frame.doc.setFocus(s)
}

func (s *Slot) IsFocused() bool {
	return s.row.frame.doc.focus == Focusable(s)
}

// SetText replaces the slot's text as one undoable change.
func (s *Slot) SetText(text string) bool {
	if !s.editable {
		return false
	}
	f := s.row.frame
	f.doc.perform(func() {
		s.text = text
		f.trackBlank()
		f.doc.modified(f)
	})
	return true
}

// Insert appends a character.
func (s *Slot) Insert(ch rune) bool {
	return s.SetText(s.text + string(ch))
}

// InsertLineBreak adds a line break to slots that allow several lines.
func (s *Slot) InsertLineBreak() bool {
	if !s.row.frame.v.multiline {
		return false
	}
	return s.Insert('\n')
}

// Backspace deletes the last character. In an empty first slot of a
// frame that is still almost blank, it removes the frame.
func (s *Slot) Backspace() bool {
	if !s.editable {
		return false
	}
	if s.text != "" {
		runes := []rune(s.text)
		return s.SetText(string(runes[:len(runes)-1]))
	}
	f := s.row.frame
	if f.firstSlot() == s && f.IsAlmostBlank() && f.parent != nil {
		before := f.CursorBefore()
		f.doc.perform(func() {
			must(f.parent.Remove(f))
		})
		before.RequestFocus()
		return true
	}
	return s.row.focusLeft(s)
}
