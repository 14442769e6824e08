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

type rowSpec struct {
	caption string
	slots   []string
}

type layoutItem struct {
	part   types.Part
	canvas bool
	hidden bool
}

// sandwich names the extension characters of frames that grow
// intermediate and tail canvases (else if/else, catch/finally).
type sandwich struct {
	intermediate string
	tail         string
}

// A variant is the data that makes a frame class behave as it does.
type variant struct {
	rows       map[types.Part]rowSpec
	canvases   map[types.Part]types.Role
	layout     []layoutItem
	extensions func(f *Frame) []Extension
	inner      func(f *Frame, c *Canvas, cur *Cursor) []Extension
	sandwich   *sandwich
	multiline  bool
	pullUp     bool
}

var (
	headerOnly = []layoutItem{{part: types.PartHeader}}
	withBody   = []layoutItem{{part: types.PartHeader}, {part: types.PartBody, canvas: true}}
	statements = map[types.Part]types.Role{types.PartBody: types.RoleStatements}
)

func header(caption string, slots ...string) map[types.Part]rowSpec {
	return map[types.Part]rowSpec{types.PartHeader: {caption: caption, slots: slots}}
}

var variants map[types.Class]*variant

func init() {
	sandwichCanvases := map[types.Part]types.Role{
		types.PartBody:         types.RoleStatements,
		types.PartIntermediate: types.RoleStatements,
		types.PartTail:         types.RoleStatements,
	}
	variants = map[types.Class]*variant{
		types.ClassBlank:   {},
		types.ClassComment: {rows: header("//", "text"), layout: headerOnly, multiline: true},
		types.ClassVar: {
			rows:       header("var", "type", "name", "value"),
			layout:     headerOnly,
			extensions: modifierExtensions,
		},
		types.ClassAssign: {rows: header("set", "target", "value"), layout: headerOnly},
		types.ClassCall:   {rows: header("call", "expression"), layout: headerOnly},
		types.ClassReturn: {rows: header("return", "value"), layout: headerOnly},
		types.ClassBreak:  {rows: header("break"), layout: headerOnly},
		types.ClassThrow:  {rows: header("throw", "exception"), layout: headerOnly},
		types.ClassIf: {
			rows: map[types.Part]rowSpec{
				types.PartHeader:       {caption: "if", slots: []string{"condition"}},
				types.PartIntermediate: {caption: "else if", slots: []string{"condition"}},
				types.PartTail:         {caption: "else"},
			},
			canvases:   sandwichCanvases,
			layout:     withBody,
			extensions: sandwichExtensions,
			inner:      sandwichInner,
			sandwich:   &sandwich{intermediate: dictionary.ElseIf, tail: dictionary.Else},
			pullUp:     true,
		},
		types.ClassWhile: {
			rows:     header("while", "condition"),
			canvases: statements,
			layout:   withBody,
			inner:    loopInner,
			pullUp:   true,
		},
		types.ClassForEach: {
			rows:     header("for each", "type", "var", "collection"),
			canvases: statements,
			layout:   withBody,
			inner:    loopInner,
			pullUp:   true,
		},
		types.ClassTry: {
			rows: map[types.Part]rowSpec{
				types.PartHeader:       {caption: "try"},
				types.PartIntermediate: {caption: "catch", slots: []string{"type", "name"}},
				types.PartTail:         {caption: "finally"},
			},
			canvases:   sandwichCanvases,
			layout:     withBody,
			extensions: sandwichExtensions,
			inner:      sandwichInner,
			sandwich:   &sandwich{intermediate: dictionary.Catch, tail: dictionary.Finally},
			pullUp:     true,
		},
		types.ClassSwitch: {
			rows: map[types.Part]rowSpec{
				types.PartHeader:  {caption: "switch", slots: []string{"expression"}},
				types.PartDefault: {caption: "default"},
			},
			canvases: map[types.Part]types.Role{
				types.PartCases:   types.RoleCases,
				types.PartDefault: types.RoleStatements,
			},
			layout:     []layoutItem{{part: types.PartHeader}, {part: types.PartCases, canvas: true}},
			extensions: switchExtensions,
			inner:      switchInner,
			pullUp:     true,
		},
		types.ClassCase: {rows: header("case", "value"), canvases: statements, layout: withBody},
		types.ClassMethod: {
			rows:       header("method", "type", "name", "parameters"),
			canvases:   statements,
			layout:     withBody,
			extensions: modifierExtensions,
		},
		types.ClassConstructor: {rows: header("constructor", "parameters"), canvases: statements, layout: withBody},
		types.ClassImport:      {rows: header("import", "name"), layout: headerOnly},
		types.ClassTopLevel: {
			rows: header("class", "name"),
			canvases: map[types.Part]types.Role{
				types.PartImports:      types.RoleImports,
				types.PartFields:       types.RoleFields,
				types.PartConstructors: types.RoleConstructors,
				types.PartMethods:      types.RoleMethods,
			},
			layout: []layoutItem{
				{part: types.PartHeader},
				{part: types.PartImports, canvas: true},
				{part: types.PartFields, canvas: true},
				{part: types.PartConstructors, canvas: true},
				{part: types.PartMethods, canvas: true},
			},
		},
	}
}

// modifierExtensions toggle final, and static on fields and methods.
func modifierExtensions(f *Frame) []Extension {
	sources := types.SourcesOf(types.SourceModifier, types.SourceSelection)
	exts := []Extension{{
		Key:     'n',
		Label:   "Toggle final",
		Sources: sources,
		Action:  func() { f.setModifiers(!f.final, f.static) },
		SelectionAction: func(frames []*Frame) {
			all := true
			for _, x := range frames {
				all = all && x.final
			}
			for _, x := range frames {
				x.setModifiers(!all, x.static)
			}
		},
	}}
	if f.class == types.ClassMethod || (f.parent != nil && f.parent.part == types.PartFields) {
		exts = append(exts, Extension{
			Key:     's',
			Label:   "Toggle static",
			Sources: sources,
			Action:  func() { f.setModifiers(f.final, !f.static) },
			SelectionAction: func(frames []*Frame) {
				all := true
				for _, x := range frames {
					all = all && x.static
				}
				for _, x := range frames {
					x.setModifiers(x.final, !all)
				}
			},
		})
	}
	return exts
}

func (f *Frame) setModifiers(final, static bool) {
	f.final = final
	f.static = static
	f.doc.modified(f)
}

func loopInner(f *Frame, c *Canvas, cur *Cursor) []Extension {
	if e, ok := pullUpExtension(f); ok {
		return []Extension{e}
	}
	return nil
}

func pullUpExtension(f *Frame) (Extension, bool) {
	if !f.CanPullUp() {
		return Extension{}, false
	}
	return Extension{
		Key:     types.Backspace,
		Label:   "Remove " + f.Caption() + ", keep contents",
		Sources: types.SourcesOf(types.SourceInsideFirst),
		Action:  func() { f.PullUpContents() },
	}, true
}
