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

	"github.com/timburks/stride/types"
)

// nestedIf adds if { while { call } } to c and returns the if and the call.
func nestedIf(t *testing.T, c *Canvas) (*Frame, *Frame) {
	f := add(t, c, types.KindIf)
	w := add(t, f.FirstCanvas(), types.KindWhile)
	call := add(t, w.FirstCanvas(), types.KindCall)
	return f, call
}

func enabledFlags(frames ...*Frame) []bool {
	var flags []bool
	for _, f := range frames {
		flags = append(flags, f.IsEnabled())
	}
	return flags
}

func TestSiblingIfs(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	first, grandchild1 := nestedIf(t, body)
	second, grandchild2 := nestedIf(t, body)

	if !first.SetFrameEnabled(false) {
		t.Fatalf("Disabling failed")
	}
	all := []*Frame{first, first.FirstCanvas().Frames()[0], grandchild1, second, grandchild2}
	before := enabledFlags(all...)

	if grandchild1.SetFrameEnabled(true) {
		t.Errorf("Enabled a frame under a disabled ancestor")
	}
	after := enabledFlags(all...)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Failed enable changed frame %d", i)
		}
	}
	if !grandchild2.SetFrameEnabled(true) || !grandchild2.IsEnabled() {
		t.Errorf("Enabling a frame under enabled ancestors failed")
	}
	if !grandchild2.SetFrameEnabled(false) || !grandchild2.SetFrameEnabled(true) {
		t.Errorf("Could not disable and enable again")
	}
}

func TestDisablePropagates(t *testing.T) {
	d, w := setup(t)
	body := methodBody(t, d)
	f, call := nestedIf(t, body)
	call.Slots()[0].SetText("run()")
	call.AddError(&CodeError{Message: "unknown method"})
	w.modified = 0

	if !f.SetFrameEnabled(false) {
		t.Fatalf("Disabling failed")
	}
	if w.modified != 1 {
		t.Errorf("Disabling sent %d notifications", w.modified)
	}
	var walk func(x *Frame)
	walk = func(x *Frame) {
		if x.IsEnabled() {
			t.Errorf("%s frame is still enabled", x.Class())
		}
		for _, s := range x.Slots() {
			if s.IsEditable() {
				t.Errorf("%s slot %s is still editable", x.Class(), s.Name())
			}
		}
		for _, c := range x.Canvases() {
			for _, child := range c.Frames() {
				walk(child)
			}
		}
	}
	walk(f)
	if len(call.Errors()) != 0 {
		t.Errorf("Disabled frame kept its errors")
	}
	if call.AddError(&CodeError{Message: "again"}) {
		t.Errorf("Disabled frame took an error")
	}
	if call.Slots()[0].SetText("x") || call.Slots()[0].Text() != "run()" {
		t.Errorf("Disabled slot took text")
	}
}

func TestEnablePreview(t *testing.T) {
	d, _ := setup(t)
	body := methodBody(t, d)
	f, call := nestedIf(t, body)

	f.SetEnablePreview(PreviewDisabled)
	if !call.ShowsDisabled() || !call.IsEnabled() {
		t.Errorf("Preview changed the model or was not shown")
	}
	f.SetEnablePreview(PreviewNone)
	if call.ShowsDisabled() {
		t.Errorf("Preview was not cleared")
	}
	f.SetFrameEnabled(false)
	f.SetEnablePreview(PreviewEnabled)
	if call.ShowsDisabled() || call.IsEnabled() {
		t.Errorf("Enable preview changed the model or was not shown")
	}
}
