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
	"fmt"

	"github.com/timburks/stride/types"
)

// An Extension is a structural change bound to a key in a context.
type Extension struct {
	Key             rune
	Label           string
	Sources         types.Sources
	Action          func()
	SelectionAction func(frames []*Frame)
}

func (e Extension) ValidFor(s types.Source) bool {
	return e.Sources.Has(s)
}

// matchExtension finds the one extension bound to key for tag. Two
// matches mean a broken binding table.
func matchExtension(exts []Extension, key rune, tag types.Source) (Extension, bool) {
	var found []Extension
	for _, e := range exts {
		if e.Key == key && e.ValidFor(tag) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return Extension{}, false
	case 1:
		return found[0], true
	}
	panic(fmt.Sprintf("ambiguous extensions for %q: %q and %q", key, found[0].Label, found[1].Label))
}

func (f *Frame) runExtension(key rune, tag types.Source) bool {
	e, ok := matchExtension(f.Extensions(), key, tag)
	if !ok || e.Action == nil {
		return false
	}
	f.doc.perform(e.Action)
	return true
}

// notifyPrefixKey offers key to the extensions that fire before f.
func (f *Frame) notifyPrefixKey(key rune) bool {
	return f.runExtension(key, types.SourceBefore)
}

// notifyExtensionKey offers key to the extensions that fire after f.
func (f *Frame) notifyExtensionKey(key rune) bool {
	return f.runExtension(key, types.SourceAfter)
}

// NotifyModifierKey offers key to f's modifier toggles.
func (f *Frame) NotifyModifierKey(key rune) bool {
	if !f.enabled {
		return false
	}
	return f.runExtension(key, types.SourceModifier)
}
