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
package types

// Editor modes
const (
	ModeEdit    = 0
	ModeCommand = 2
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Kind is a frame kind that can be requested from a cursor.
// Several kinds may construct the same Class.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindLocalVar
	KindField
	KindAssign
	KindCall
	KindReturn
	KindBreak
	KindThrow
	KindIf
	KindWhile
	KindForEach
	KindTry
	KindSwitch
	KindCase
	KindMethod
	KindConstructor
	KindImport
)

var kindNames = []string{
	"blank", "comment", "var", "field", "assign", "call", "return",
	"break", "throw", "if", "while", "foreach", "try", "switch", "case",
	"method", "constructor", "import",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every frame kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindNamed looks up a kind by its name.
func KindNamed(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Class identifies a constructed frame variant.
type Class int

const (
	ClassBlank Class = iota
	ClassComment
	ClassVar
	ClassAssign
	ClassCall
	ClassReturn
	ClassBreak
	ClassThrow
	ClassIf
	ClassWhile
	ClassForEach
	ClassTry
	ClassSwitch
	ClassCase
	ClassMethod
	ClassConstructor
	ClassImport
	ClassTopLevel
)

var classNames = []string{
	"blank", "comment", "var", "assign", "call", "return", "break",
	"throw", "if", "while", "foreach", "try", "switch", "case", "method",
	"constructor", "import", "class",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Class returns the class of frame built for a kind.
func (k Kind) Class() Class {
	switch k {
	case KindBlank:
		return ClassBlank
	case KindComment:
		return ClassComment
	case KindLocalVar, KindField:
		return ClassVar
	case KindAssign:
		return ClassAssign
	case KindCall:
		return ClassCall
	case KindReturn:
		return ClassReturn
	case KindBreak:
		return ClassBreak
	case KindThrow:
		return ClassThrow
	case KindIf:
		return ClassIf
	case KindWhile:
		return ClassWhile
	case KindForEach:
		return ClassForEach
	case KindTry:
		return ClassTry
	case KindSwitch:
		return ClassSwitch
	case KindCase:
		return ClassCase
	case KindMethod:
		return ClassMethod
	case KindConstructor:
		return ClassConstructor
	case KindImport:
		return ClassImport
	}
	panic("unknown frame kind")
}

// Role describes what a canvas holds.
type Role int

const (
	RoleImports Role = iota
	RoleFields
	RoleConstructors
	RoleMethods
	RoleStatements
	RoleCases
)

// Roles returns every canvas role.
func Roles() []Role {
	return []Role{RoleImports, RoleFields, RoleConstructors, RoleMethods, RoleStatements, RoleCases}
}

func (r Role) String() string {
	switch r {
	case RoleImports:
		return "imports"
	case RoleFields:
		return "fields"
	case RoleConstructors:
		return "constructors"
	case RoleMethods:
		return "methods"
	case RoleStatements:
		return "statements"
	case RoleCases:
		return "cases"
	}
	return "unknown"
}

// Part names a region of a frame's content: a row or a canvas.
type Part int

const (
	PartHeader Part = iota
	PartBody
	PartIntermediate
	PartTail
	PartImports
	PartFields
	PartConstructors
	PartMethods
	PartCases
	PartDefault
)

// Source tags say where an extension may fire relative to its frame.
type Source uint8

const (
	SourceBefore Source = 1 << iota
	SourceAfter
	SourceInsideFirst
	SourceInsideLater
	SourceModifier
	SourceSelection
)

// Sources is a set of Source tags.
type Sources uint8

// SourcesOf collects tags into a set.
func SourcesOf(tags ...Source) Sources {
	var s Sources
	for _, t := range tags {
		s |= Sources(t)
	}
	return s
}

func (s Sources) Has(t Source) bool {
	return s&Sources(t) != 0
}

// Backspace is the extension key used for backspace bindings.
const Backspace rune = '\b'

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyDelete
	KeyEnter
	KeyEsc
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeySpace
	KeyTab
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlY
	KeyCtrlZ
)

// Modifier is a set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Event types
const (
	EventKey = iota
	EventResize
	EventInterrupt
)

// Event is a user input event.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Color is an index into the terminal's 256 color palette.
type Color uint8

// Colors
const (
	ColorBlack       Color = 0x01
	ColorWhite       Color = 0xff
	ColorKeyword     Color = 0x70
	ColorPunctuation Color = 0x71
	ColorNumber      Color = 0x83
	ColorString      Color = 0xe0
	ColorComment     Color = 0xf8
	ColorPlaceholder Color = 0xf5
	ColorDisabled    Color = 0xf0
	ColorError       Color = 0xc5
	ColorCursor      Color = 0x2f
)
