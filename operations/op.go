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
package operations

import (
	"github.com/timburks/stride/editor"
)

// An Operation is a command on the frames at the focus.
type Operation interface {
	Name() string
	Applies(t Target) bool
	Perform(t Target, multiplier int) bool
}

// A Previewer shows what an operation would do without doing it.
type Previewer interface {
	Preview(t Target, on bool)
}

// A Target is what an operation acts on.
type Target struct {
	Doc    *editor.Document
	Frames []*editor.Frame // all in one canvas
	Cursor *editor.Cursor  // the focused cursor, if any
}

// TargetOf returns the selection, or else the frame holding the focused
// slot, or else the frame after (or before) the focused cursor.
func TargetOf(d *editor.Document) Target {
	t := Target{Doc: d, Cursor: d.FocusedCursor()}
	if sel := d.Selection(); !sel.IsEmpty() {
		t.Frames = sel.Frames()
		return t
	}
	if s := d.FocusedSlot(); s != nil {
		t.Frames = []*editor.Frame{s.EnclosingFrame()}
		return t
	}
	if c := t.Cursor; c != nil {
		if f := c.FrameAfter(); f != nil {
			t.Frames = []*editor.Frame{f}
		} else if f := c.FrameBefore(); f != nil {
			t.Frames = []*editor.Frame{f}
		}
	}
	return t
}

// Single returns the only target frame, or nil.
func (t Target) Single() *editor.Frame {
	if len(t.Frames) != 1 {
		return nil
	}
	return t.Frames[0]
}

func (t Target) canvas() *editor.Canvas {
	if len(t.Frames) == 0 {
		return nil
	}
	return t.Frames[0].Parent()
}

// editable reports whether the target frames sit in an enabled canvas.
func (t Target) editable() bool {
	c := t.canvas()
	if c == nil {
		return false
	}
	f := c.Frame()
	return f == nil || f.IsEnabled()
}

// Op holds the state shared by all operations.
type Op struct {
	Multiplier int
}

// MaxMultiplier bounds the repeat count of an operation.
const MaxMultiplier = 100

func (op *Op) init(multiplier int) {
	op.Multiplier = min(max(multiplier, 1), MaxMultiplier)
}

// perform runs fn inside one recording boundary.
func perform(d *editor.Document, fn func() bool) bool {
	d.BeginRecordingState()
	defer d.EndRecordingState()
	return fn()
}

// Standard returns one of each operation, sharing clip.
func Standard(clip *Clipboard) []Operation {
	return []Operation{
		&Delete{},
		&Cut{Clipboard: clip},
		&Copy{Clipboard: clip},
		&Paste{Clipboard: clip},
		&Enable{},
		&Disable{},
		&PullUp{},
	}
}

// Named finds an operation by name.
func Named(ops []Operation, name string) Operation {
	for _, op := range ops {
		if op.Name() == name {
			return op
		}
	}
	return nil
}

// ForTarget lists the operations that apply to t, as a context menu would.
func ForTarget(ops []Operation, t Target) []Operation {
	var out []Operation
	for _, op := range ops {
		if op.Applies(t) {
			out = append(out, op)
		}
	}
	return out
}
