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

// Catalog categories
const (
	CategoryControl   = "Control"
	CategoryVariables = "Variables"
	CategoryCalls     = "Calls"
	CategoryComments  = "Comments"
	CategoryMembers   = "Members"
)

var defaultEntries = []Entry{
	{Kind: types.KindBlank, Key: '\n', Name: "blank", Category: CategoryComments, Description: "Blank line"},
	{Kind: types.KindComment, Key: '/', Name: "comment", Category: CategoryComments, Description: "Comment"},
	{Kind: types.KindLocalVar, Key: 'v', Name: "var", Category: CategoryVariables, Description: "Local variable"},
	{Kind: types.KindField, Key: 'v', Name: "field", Category: CategoryVariables, Description: "Field"},
	{Kind: types.KindAssign, Key: '=', Name: "assign", Category: CategoryVariables, Description: "Assignment"},
	{Kind: types.KindCall, Key: ' ', Name: "call", Category: CategoryCalls, Description: "Method call"},
	{Kind: types.KindReturn, Key: 'r', Name: "return", Category: CategoryCalls, Description: "Return from method"},
	{Kind: types.KindBreak, Key: 'b', Name: "break", Category: CategoryControl, Description: "Break out of loop"},
	{Kind: types.KindThrow, Key: 'h', Name: "throw", Category: CategoryControl, Description: "Throw exception"},
	{Kind: types.KindIf, Key: 'i', Name: "if", Category: CategoryControl, Description: "If", ValidOnSelection: true},
	{Kind: types.KindWhile, Key: 'w', Name: "while", Category: CategoryControl, Description: "While loop", ValidOnSelection: true},
	{Kind: types.KindForEach, Key: 'f', Name: "for each", Category: CategoryControl, Description: "For-each loop", ValidOnSelection: true},
	{Kind: types.KindTry, Key: 't', Name: "try", Category: CategoryControl, Description: "Try/catch", ValidOnSelection: true},
	{Kind: types.KindSwitch, Key: 's', Name: "switch", Category: CategoryControl, Description: "Switch"},
	{Kind: types.KindCase, Key: 'c', Name: "case", Category: CategoryControl, Description: "Switch case"},
	{Kind: types.KindMethod, Key: 'm', Name: "method", Category: CategoryMembers, Description: "Method"},
	{Kind: types.KindConstructor, Key: 'c', Name: "constructor", Category: CategoryMembers, Description: "Constructor"},
	{Kind: types.KindImport, Key: 'i', Name: "import", Category: CategoryMembers, Description: "Import"},
}

var defaultExtensions = []ExtensionChar{
	{Name: Else, Key: 'e', Roles: []types.Role{types.RoleStatements}},
	{Name: ElseIf, Key: 'l', Roles: []types.Role{types.RoleStatements}},
	{Name: Catch, Key: 'c', Roles: []types.Role{types.RoleStatements}},
	{Name: Finally, Key: 'y', Roles: []types.Role{types.RoleStatements}},
	{Name: SwitchDefault, Key: 'd', Roles: []types.Role{types.RoleStatements, types.RoleCases}},
}

// Default returns the standard dictionary.
func Default() *Dictionary {
	return MustNew(defaultEntries, defaultExtensions)
}
