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

	"github.com/atotto/clipboard"
	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/outline"
)

// The Clipboard holds copied frames. When System is set, their outline
// text is also written to the system clipboard.
type Clipboard struct {
	elements []editor.Element
	text     string
	System   bool
}

// Set replaces the clipboard contents with descriptions of frames.
func (c *Clipboard) Set(d *editor.Document, frames []*editor.Frame) {
	c.elements = nil
	for _, f := range frames {
		c.elements = append(c.elements, f.Element())
	}
	c.text = outline.Text(outline.RenderFrames(d, frames))
	if c.System {
		if err := clipboard.WriteAll(c.text); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

func (c *Clipboard) Elements() []editor.Element {
	return c.elements
}

// Text returns the outline of the copied frames.
func (c *Clipboard) Text() string {
	return c.text
}
