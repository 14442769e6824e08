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
package dictionary

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/timburks/stride/types"
)

// Extension character names
const (
	Else          = "else"
	ElseIf        = "else if"
	Catch         = "catch"
	Finally       = "finally"
	SwitchDefault = "default"
)

// ToggleKey toggles frames between enabled and disabled. No frame kind
// may use it.
const ToggleKey = '\\'

var (
	ErrNoKey        = errors.New("entry has no shortcut key")
	ErrAmbiguous    = errors.New("ambiguous shortcut")
	ErrReservedKey  = errors.New("reserved shortcut")
	ErrUnknownName  = errors.New("unknown name")
	ErrBadShortcut  = errors.New("shortcut must be a single character")
	ErrDuplicateExt = errors.New("duplicate extension character")
)

// An Entry binds a shortcut key to a frame kind.
type Entry struct {
	Kind             types.Kind
	Key              rune
	Name             string
	Category         string
	Description      string
	ValidOnSelection bool // the kind can wrap a selection of frames
}

// An ExtensionChar is the key for a named extension, together with the
// canvas roles in which it is offered.
type ExtensionChar struct {
	Name  string
	Key   rune
	Roles []types.Role
}

// The Dictionary is an immutable, validated set of entries and extension
// characters.
type Dictionary struct {
	entries    []Entry
	byKey      map[rune][]Entry
	extensions []ExtensionChar
}

// New builds and validates a dictionary.
func New(entries []Entry, extensions []ExtensionChar) (*Dictionary, error) {
	d := &Dictionary{
		entries:    append([]Entry(nil), entries...),
		byKey:      map[rune][]Entry{},
		extensions: append([]ExtensionChar(nil), extensions...),
	}
	for _, e := range d.entries {
		if e.Key == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoKey, e.Kind)
		}
		if e.Key == ToggleKey {
			return nil, fmt.Errorf("%w: %q used by %s", ErrReservedKey, e.Key, e.Kind)
		}
		d.byKey[e.Key] = append(d.byKey[e.Key], e)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustNew is like New but panics if the dictionary is invalid.
func MustNew(entries []Entry, extensions []ExtensionChar) *Dictionary {
	d, err := New(entries, extensions)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dictionary) validate() error {
	for _, role := range types.Roles() {
		tc := Check(role)
		for key, entries := range d.byKey {
			var seen *Entry
			for i := range entries {
				if !tc.CanInsert(entries[i].Kind) {
					continue
				}
				if seen != nil {
					return fmt.Errorf("%w: %q binds %s and %s in %s",
						ErrAmbiguous, key, seen.Kind, entries[i].Kind, role)
				}
				seen = &entries[i]
			}
		}
	}
	names := map[string]bool{}
	for _, x := range d.extensions {
		if names[x.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateExt, x.Name)
		}
		names[x.Name] = true
		if x.Key == 0 {
			return fmt.Errorf("%w: %s", ErrNoKey, x.Name)
		}
		if x.Key == ToggleKey {
			return fmt.Errorf("%w: %q used by %s", ErrReservedKey, x.Key, x.Name)
		}
		for _, role := range x.Roles {
			for _, y := range d.extensions {
				if y.Name != x.Name && y.Key == x.Key && hasRole(y.Roles, role) {
					return fmt.Errorf("%w: %q binds %s and %s in %s",
						ErrAmbiguous, x.Key, x.Name, y.Name, role)
				}
			}
			for _, e := range d.byKey[x.Key] {
				if Check(role).CanInsert(e.Kind) {
					return fmt.Errorf("%w: %q binds %s and %s in %s",
						ErrAmbiguous, x.Key, x.Name, e.Kind, role)
				}
			}
		}
	}
	return nil
}

func hasRole(roles []types.Role, r types.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}

// Entries returns all entries in catalog order.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Entry returns the entry for a kind.
func (d *Dictionary) Entry(k types.Kind) (Entry, bool) {
	for _, e := range d.entries {
		if e.Kind == k {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup returns the entries bound to key that tc accepts. A validated
// dictionary never returns more than one.
func (d *Dictionary) Lookup(key rune, tc TypeCheck) []Entry {
	var found []Entry
	for _, e := range d.byKey[key] {
		if tc.CanInsert(e.Kind) {
			found = append(found, e)
		}
	}
	return found
}

// Insertable returns the entries that tc accepts, in catalog order.
func (d *Dictionary) Insertable(tc TypeCheck) []Entry {
	var found []Entry
	for _, e := range d.entries {
		if tc.CanInsert(e.Kind) {
			found = append(found, e)
		}
	}
	return found
}

// ExtensionChar returns the key bound to a named extension, or 0.
func (d *Dictionary) ExtensionChar(name string) rune {
	for _, x := range d.extensions {
		if x.Name == name {
			return x.Key
		}
	}
	return 0
}

// Override returns a new dictionary with shortcut keys replaced. The maps
// go from kind name or extension name to a one character string.
func (d *Dictionary) Override(shortcuts, extensions map[string]string) (*Dictionary, error) {
	entries := d.Entries()
	for name, s := range shortcuts {
		key, err := shortcut(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		kind, ok := types.KindNamed(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownName, name)
		}
		for i := range entries {
			if entries[i].Kind == kind {
				entries[i].Key = key
			}
		}
	}
	exts := append([]ExtensionChar(nil), d.extensions...)
	for name, s := range extensions {
		key, err := shortcut(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		found := false
		for i := range exts {
			if exts[i].Name == name {
				exts[i].Key = key
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownName, name)
		}
	}
	return New(entries, exts)
}

func shortcut(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrBadShortcut
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
