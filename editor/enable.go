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

// Preview is a presentation-only enabled state shown while a menu
// offers to enable or disable frames.
type Preview int

const (
	PreviewNone Preview = iota
	PreviewEnabled
	PreviewDisabled
)

func (f *Frame) IsEnabled() bool {
	return f.enabled
}

// CanHaveEnabledState reports whether f may take the state. Disabling is
// always allowed; enabling needs every ancestor enabled.
func (f *Frame) CanHaveEnabledState(enabled bool) bool {
	if !enabled {
		return true
	}
	p := f.ParentFrame()
	if p == nil {
		return true
	}
	return p.enabled && p.CanHaveEnabledState(true)
}

// SetFrameEnabled enables or disables f and everything inside it. It
// returns false, changing nothing, if an ancestor is disabled.
func (f *Frame) SetFrameEnabled(enabled bool) bool {
	if !f.CanHaveEnabledState(enabled) {
		return false
	}
	f.setEnabled(enabled)
	f.doc.modified(f)
	return true
}

func (f *Frame) setEnabled(enabled bool) {
	f.enabled = enabled
	for _, s := range f.Slots() {
		s.editable = enabled
	}
	if !enabled {
		f.FlagErrorsAsOld()
		f.RemoveOldErrors()
	}
	for _, c := range f.Canvases() {
		for _, child := range c.frames {
			child.setEnabled(enabled)
		}
	}
}

// SetEnablePreview sets the preview state of f and its descendants.
func (f *Frame) SetEnablePreview(p Preview) {
	f.preview = p
	for _, c := range f.Canvases() {
		for _, child := range c.frames {
			child.SetEnablePreview(p)
		}
	}
}

func (f *Frame) EnablePreview() Preview {
	return f.preview
}

// ShowsDisabled reports whether f should be drawn as disabled.
func (f *Frame) ShowsDisabled() bool {
	switch f.preview {
	case PreviewEnabled:
		return false
	case PreviewDisabled:
		return true
	}
	return !f.enabled
}

// toggleEnabled enables frames if all are disabled, else disables them.
func (d *Document) toggleEnabled(frames []*Frame) {
	allDisabled := true
	for _, f := range frames {
		allDisabled = allDisabled && !f.enabled
	}
	for _, f := range frames {
		f.SetFrameEnabled(allDisabled)
	}
}
