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
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

// A CanvasParent is what a canvas asks about itself: what it accepts,
// where focus goes beyond its ends, and which extensions apply inside it.
// Frames are canvas parents; tests and tools may supply their own.
type CanvasParent interface {
	CheckCanvas(c *Canvas) dictionary.TypeCheck
	CursorBeforeCanvas(c *Canvas) *Cursor
	CursorAfterCanvas(c *Canvas) *Cursor
	InnerExtensions(c *Canvas, cur *Cursor) []Extension
	EnclosingFrame() *Frame
	ModifiedCanvasContent(c *Canvas)
}

// processInnerExtensionKey offers key to the extensions p provides inside
// c at cur, and runs the one that claims it.
func processInnerExtensionKey(p CanvasParent, c *Canvas, cur *Cursor, key rune, atStart bool) bool {
	tag := types.SourceInsideLater
	if atStart {
		tag = types.SourceInsideFirst
	}
	e, ok := matchExtension(p.InnerExtensions(c, cur), key, tag)
	if !ok {
		return false
	}
	c.doc.perform(e.Action)
	return true
}

func (f *Frame) CheckCanvas(c *Canvas) dictionary.TypeCheck {
	if role, ok := f.v.canvases[c.part]; ok {
		return dictionary.Check(role)
	}
	return dictionary.Nothing()
}

// CursorBeforeCanvas is the last cursor of the previous visible canvas,
// or the cursor before the frame.
func (f *Frame) CursorBeforeCanvas(c *Canvas) *Cursor {
	i := f.itemIndex(c)
	for j := i - 1; j >= 0; j-- {
		if prev, ok := f.items[j].(*Canvas); ok && prev.showing {
			return prev.LastCursor()
		}
	}
	return f.CursorBefore()
}

// CursorAfterCanvas is the first cursor of the next visible canvas, or
// the cursor after the frame.
func (f *Frame) CursorAfterCanvas(c *Canvas) *Cursor {
	i := f.itemIndex(c)
	for j := i + 1; j < len(f.items); j++ {
		if next, ok := f.items[j].(*Canvas); ok && next.showing {
			return next.FirstCursor()
		}
	}
	return f.CursorAfter()
}

func (f *Frame) InnerExtensions(c *Canvas, cur *Cursor) []Extension {
	if f.v.inner == nil {
		return nil
	}
	return f.v.inner(f, c, cur)
}

func (f *Frame) EnclosingFrame() *Frame {
	return f
}

func (f *Frame) ModifiedCanvasContent(c *Canvas) {
	f.trackBlank()
	f.doc.modified(f)
}
