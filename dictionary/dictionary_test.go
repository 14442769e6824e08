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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/stride/types"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	if len(d.Entries()) != len(types.Kinds()) {
		t.Errorf("Default dictionary has %d entries, expected %d", len(d.Entries()), len(types.Kinds()))
	}
}

func TestExtensionChars(t *testing.T) {
	d := Default()
	got := map[string]rune{}
	for _, name := range []string{Else, ElseIf, Catch, Finally, SwitchDefault} {
		got[name] = d.ExtensionChar(name)
	}
	want := map[string]rune{
		Else:          'e',
		ElseIf:        'l',
		Catch:         'c',
		Finally:       'y',
		SwitchDefault: 'd',
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extension characters differ (-want +got):\n%s", diff)
	}
	if d.ExtensionChar("otherwise") != 0 {
		t.Errorf("Unknown extension has a character")
	}
}

func TestLookupByRole(t *testing.T) {
	d := Default()
	tests := []struct {
		role types.Role
		key  rune
		want []types.Kind
	}{
		{types.RoleStatements, 'v', []types.Kind{types.KindLocalVar}},
		{types.RoleFields, 'v', []types.Kind{types.KindField}},
		{types.RoleStatements, 'w', []types.Kind{types.KindWhile}},
		{types.RoleMethods, 'w', nil},
		{types.RoleCases, 'c', []types.Kind{types.KindCase}},
		{types.RoleConstructors, 'c', []types.Kind{types.KindConstructor}},
		{types.RoleImports, 'i', []types.Kind{types.KindImport}},
		{types.RoleStatements, 'q', nil},
	}
	for _, tc := range tests {
		var got []types.Kind
		for _, e := range d.Lookup(tc.key, Check(tc.role)) {
			got = append(got, e.Kind)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Lookup(%q, %s) mismatch (-want +got):\n%s", tc.key, tc.role, diff)
		}
	}
}

func TestKindsAndClassesAreSeparate(t *testing.T) {
	fields := Check(types.RoleFields)
	statements := Check(types.RoleStatements)
	if fields.CanInsert(types.KindLocalVar) {
		t.Errorf("Fields accept a local variable")
	}
	if !fields.CanPlace(types.ClassVar) || !statements.CanPlace(types.ClassVar) {
		t.Errorf("Var frames should be placeable in both fields and statements")
	}
	if statements.CanPlace(types.ClassMethod) {
		t.Errorf("Statements accept a method")
	}
}

func TestAmbiguousEntriesAreRejected(t *testing.T) {
	entries := append(Default().Entries(), Entry{Kind: types.KindWhile, Key: 'i', Name: "while"})
	_, err := New(entries, defaultExtensions)
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Expected ambiguous error, got %v", err)
	}
}

func TestExtensionCharacterShadowingIsRejected(t *testing.T) {
	exts := append([]ExtensionChar(nil), defaultExtensions...)
	exts[0].Key = 'w'
	_, err := New(defaultEntries, exts)
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Expected ambiguous error, got %v", err)
	}
}

func TestReservedToggleKey(t *testing.T) {
	_, err := Default().Override(map[string]string{"while": `\`}, nil)
	if !errors.Is(err, ErrReservedKey) {
		t.Errorf("Expected reserved key error, got %v", err)
	}
}

func TestOverride(t *testing.T) {
	d, err := Default().Override(map[string]string{"while": "W"}, map[string]string{Finally: "z"})
	if err != nil {
		t.Fatalf("Override failed: %+v", err)
	}
	if got := d.Lookup('W', Check(types.RoleStatements)); len(got) != 1 || got[0].Kind != types.KindWhile {
		t.Errorf("Unexpected lookup after override: %+v", got)
	}
	if got := d.Lookup('w', Check(types.RoleStatements)); len(got) != 0 {
		t.Errorf("Old key still bound: %+v", got)
	}
	if d.ExtensionChar(Finally) != 'z' {
		t.Errorf("Unexpected finally key %q", d.ExtensionChar(Finally))
	}
	if Default().ExtensionChar(Finally) != 'y' {
		t.Errorf("Override changed the original dictionary")
	}
	if _, err := Default().Override(map[string]string{"loop": "x"}, nil); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Expected unknown name error, got %v", err)
	}
	if _, err := Default().Override(map[string]string{"while": "xy"}, nil); !errors.Is(err, ErrBadShortcut) {
		t.Errorf("Expected bad shortcut error, got %v", err)
	}
}
