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
	"log"

	"github.com/timburks/stride/editor"
)

// Paste inserts copies of the clipboard at the focused cursor, or after
// the frame holding the focused slot.
type Paste struct {
	Op
	Clipboard *Clipboard
}

func (op *Paste) Name() string { return "paste" }

// destination returns where pasted frames go.
func (op *Paste) destination(t Target) *editor.Cursor {
	if t.Cursor != nil {
		return t.Cursor
	}
	if f := t.Single(); f != nil && f.Parent() != nil {
		return f.CursorAfter()
	}
	return nil
}

func (op *Paste) Applies(t Target) bool {
	els := op.Clipboard.Elements()
	cur := op.destination(t)
	if len(els) == 0 || cur == nil {
		return false
	}
	if f := cur.EnclosingFrame(); f != nil && !f.IsEnabled() {
		return false
	}
	for _, el := range els {
		if !cur.Canvas().Accepts(el.Class) {
			return false
		}
	}
	return true
}

func (op *Paste) Perform(t Target, multiplier int) bool {
	if !op.Applies(t) {
		return false
	}
	op.init(multiplier)
	cur := op.destination(t)
	frames, err := copies(t.Doc, op.Clipboard.Elements(), op.Multiplier)
	if err != nil {
		log.Printf("paste: %v", err)
		return false
	}
	return perform(t.Doc, func() bool {
		if err := cur.Canvas().InsertFramesAfter(cur, frames); err != nil {
			panic(err)
		}
		return true
	})
}

// copies builds n copies of els.
func copies(d *editor.Document, els []editor.Element, n int) ([]*editor.Frame, error) {
	var frames []*editor.Frame
	for i := 0; i < n; i++ {
		for _, el := range els {
			f, err := d.Build(el)
			if err != nil {
				return nil, err
			}
			frames = append(frames, f)
		}
	}
	return frames, nil
}
