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
	"github.com/timburks/stride/types"
)

// A TypeCheck answers what may go into a canvas: which kinds can be
// inserted fresh and which already built classes can be placed there.
type TypeCheck interface {
	CanInsert(k types.Kind) bool
	CanPlace(c types.Class) bool
}

type check struct {
	kinds   map[types.Kind]bool
	classes map[types.Class]bool
}

func newCheck(kinds ...types.Kind) *check {
	c := &check{kinds: map[types.Kind]bool{}, classes: map[types.Class]bool{}}
	for _, k := range kinds {
		c.kinds[k] = true
		c.classes[k.Class()] = true
	}
	return c
}

func (c *check) CanInsert(k types.Kind) bool {
	return c.kinds[k]
}

func (c *check) CanPlace(cl types.Class) bool {
	return c.classes[cl]
}

var checks = map[types.Role]*check{
	types.RoleImports:      newCheck(types.KindImport),
	types.RoleFields:       newCheck(types.KindField, types.KindComment),
	types.RoleConstructors: newCheck(types.KindConstructor, types.KindComment),
	types.RoleMethods:      newCheck(types.KindMethod, types.KindComment),
	types.RoleStatements: newCheck(
		types.KindBlank, types.KindComment, types.KindLocalVar,
		types.KindAssign, types.KindCall, types.KindReturn, types.KindBreak,
		types.KindThrow, types.KindIf, types.KindWhile, types.KindForEach,
		types.KindTry, types.KindSwitch),
	types.RoleCases: newCheck(types.KindCase),
}

// Check returns the type check for canvases with the given role.
func Check(r types.Role) TypeCheck {
	if c, ok := checks[r]; ok {
		return c
	}
	return newCheck()
}

// Nothing accepts no kinds and no classes.
func Nothing() TypeCheck {
	return newCheck()
}
