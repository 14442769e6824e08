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

// watcher records observer calls.
type watcher struct {
	modified int
	focused  int
	catalogs int
}

func (w *watcher) FrameModified(f *Frame)        { w.modified++ }
func (w *watcher) FocusChanged(target Focusable) { w.focused++ }
func (w *watcher) ShowCatalog(c *Cursor)         { w.catalogs++ }

func setup(t *testing.T) (*Document, *watcher) {
	d := NewDocument(dictionary.Default())
	w := &watcher{}
	d.AddObserver(w)
	return d, w
}

// methodBody adds a method to the document and returns its body.
func methodBody(t *testing.T, d *Document) *Canvas {
	methods := d.Root().CanvasFor(types.PartMethods)
	m := d.NewFrame(types.KindMethod)
	if err := methods.InsertAfter(m, nil); err != nil {
		t.Fatalf("Insert method failed: %+v", err)
	}
	return m.FirstCanvas()
}

// add appends a new frame of kind k to c.
func add(t *testing.T, c *Canvas, k types.Kind) *Frame {
	f := c.doc.NewFrame(k)
	if err := c.InsertAfter(f, nil); err != nil {
		t.Fatalf("Insert %s failed: %+v", k, err)
	}
	return f
}

func checkInvariant(t *testing.T, c *Canvas) {
	t.Helper()
	if len(c.cursors) != len(c.frames)+1 {
		t.Fatalf("Canvas has %d cursors and %d frames", len(c.cursors), len(c.frames))
	}
	for _, f := range c.frames {
		if f.Parent() != c {
			t.Errorf("Frame %d has the wrong parent", f.ID())
		}
	}
}

func classes(c *Canvas) []types.Class {
	var cs []types.Class
	for _, f := range c.Frames() {
		cs = append(cs, f.Class())
	}
	return cs
}

// identity compares cursors and frames by pointer.
var identity = cmp.Options{
	cmp.Comparer(func(a, b *Cursor) bool { return a == b }),
	cmp.Comparer(func(a, b *Frame) bool { return a == b }),
}
