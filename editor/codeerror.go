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
	"sort"
)

// A CodeError is a problem reported against a frame.
type CodeError struct {
	Message  string
	Priority int // lower is shown first
	old      bool
}

// AddError attaches err to f. Disabled frames don't take errors.
func (f *Frame) AddError(err *CodeError) bool {
	if !f.enabled || f.disposed {
		return false
	}
	f.errors = append(f.errors, err)
	return true
}

func (f *Frame) Errors() []*CodeError {
	return append([]*CodeError(nil), f.errors...)
}

// ShownError returns the error to display: the one with the lowest
// priority, earliest first. Fresh frames show nothing.
func (f *Frame) ShownError() *CodeError {
	if f.fresh || len(f.errors) == 0 {
		return nil
	}
	errs := f.Errors()
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Priority < errs[j].Priority
	})
	return errs[0]
}

// FlagErrorsAsOld marks the current errors for removal.
func (f *Frame) FlagErrorsAsOld() {
	for _, e := range f.errors {
		e.old = true
	}
}

// RemoveOldErrors drops errors flagged as old.
func (f *Frame) RemoveOldErrors() {
	kept := f.errors[:0]
	for _, e := range f.errors {
		if !e.old {
			kept = append(kept, e)
		}
	}
	f.errors = kept
}
