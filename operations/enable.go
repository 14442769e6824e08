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

// Enable enables the target frames.
type Enable struct {
	Op
}

func (op *Enable) Name() string { return "enable" }

func (op *Enable) Applies(t Target) bool {
	for _, f := range t.Frames {
		if !f.IsEnabled() && f.CanHaveEnabledState(true) {
			return true
		}
	}
	return false
}

func (op *Enable) Perform(t Target, multiplier int) bool {
	return setEnabled(t, true, op.Applies(t))
}

func (op *Enable) Preview(t Target, on bool) {
	preview(t, on, editor.PreviewEnabled)
}

// Disable disables the target frames.
type Disable struct {
	Op
}

func (op *Disable) Name() string { return "disable" }

func (op *Disable) Applies(t Target) bool {
	for _, f := range t.Frames {
		if f.IsEnabled() {
			return true
		}
	}
	return false
}

func (op *Disable) Perform(t Target, multiplier int) bool {
	return setEnabled(t, false, op.Applies(t))
}

func (op *Disable) Preview(t Target, on bool) {
	preview(t, on, editor.PreviewDisabled)
}

func setEnabled(t Target, enabled, applies bool) bool {
	if !applies {
		return false
	}
	return perform(t.Doc, func() bool {
		changed := false
		for _, f := range t.Frames {
			if f.IsEnabled() != enabled && f.SetFrameEnabled(enabled) {
				changed = true
			}
		}
		return changed
	})
}

func preview(t Target, on bool, p editor.Preview) {
	if !on {
		p = editor.PreviewNone
	}
	for _, f := range t.Frames {
		f.SetEnablePreview(p)
	}
}

// PullUp replaces a frame with its contents.
type PullUp struct {
	Op
}

func (op *PullUp) Name() string { return "pullup" }

func (op *PullUp) Applies(t Target) bool {
	f := t.Single()
	return f != nil && f.CanPullUp()
}

func (op *PullUp) Perform(t Target, multiplier int) bool {
	if !op.Applies(t) {
		return false
	}
	return t.Single().PullUpContents()
}
