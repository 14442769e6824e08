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

// Delete removes the target frames.
type Delete struct {
	Op
}

func (op *Delete) Name() string { return "delete" }

func (op *Delete) Applies(t Target) bool {
	return len(t.Frames) > 0 && t.editable()
}

func (op *Delete) Perform(t Target, multiplier int) bool {
	if !op.Applies(t) {
		return false
	}
	op.init(multiplier)
	c := t.canvas()
	before := c.CursorBefore(t.Frames[0])
	done := perform(t.Doc, func() bool {
		for _, f := range t.Frames {
			if err := c.Remove(f); err != nil {
				panic(err)
			}
		}
		return true
	})
	t.Doc.Selection().Clear()
	before.RequestFocus()
	return done
}

// Cut copies the target frames and removes them.
type Cut struct {
	Op
	Clipboard *Clipboard
}

func (op *Cut) Name() string { return "cut" }

func (op *Cut) Applies(t Target) bool {
	return (&Delete{}).Applies(t)
}

func (op *Cut) Perform(t Target, multiplier int) bool {
	if !op.Applies(t) {
		return false
	}
	op.init(multiplier)
	op.Clipboard.Set(t.Doc, t.Frames)
	return (&Delete{}).Perform(t, 1)
}

// Copy puts the target frames on the clipboard.
type Copy struct {
	Op
	Clipboard *Clipboard
}

func (op *Copy) Name() string { return "copy" }

func (op *Copy) Applies(t Target) bool {
	return len(t.Frames) > 0
}

func (op *Copy) Perform(t Target, multiplier int) bool {
	if !op.Applies(t) {
		return false
	}
	op.init(multiplier)
	op.Clipboard.Set(t.Doc, t.Frames)
	return true
}
