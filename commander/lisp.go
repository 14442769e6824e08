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
package commander

import (
	"errors"
	"log"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/stride/outline"
	"github.com/timburks/stride/types"
)

// Lisp primitives act on the most recently created Commander.
var current *Commander

func bind(c *Commander) {
	current = c
}

func init() {
	golisp.MakePrimitiveFunction("key", "1", KeyImpl)
	golisp.MakePrimitiveFunction("press", "1", PressImpl)
	golisp.MakePrimitiveFunction("up", "0", arrow(types.KeyArrowUp))
	golisp.MakePrimitiveFunction("down", "0", arrow(types.KeyArrowDown))
	golisp.MakePrimitiveFunction("left", "0", arrow(types.KeyArrowLeft))
	golisp.MakePrimitiveFunction("right", "0", arrow(types.KeyArrowRight))
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("redo", "0", RedoImpl)
	golisp.MakePrimitiveFunction("command", "1", CommandImpl)
	golisp.MakePrimitiveFunction("outline", "0", OutlineImpl)
}

var keyNames = map[string]types.Key{
	"up":        types.KeyArrowUp,
	"down":      types.KeyArrowDown,
	"left":      types.KeyArrowLeft,
	"right":     types.KeyArrowRight,
	"backspace": types.KeyBackspace2,
	"delete":    types.KeyDelete,
	"enter":     types.KeyEnter,
	"esc":       types.KeyEsc,
	"home":      types.KeyHome,
	"end":       types.KeyEnd,
	"space":     types.KeySpace,
	"tab":       types.KeyTab,
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(val), nil
}

// KeyImpl types each character of its argument.
func KeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("key", args)
	if err != nil {
		return nil, err
	}
	ok := true
	for _, ch := range s {
		ok = current.doc.KeyTyped(ch) && ok
	}
	return golisp.BooleanWithValue(ok), nil
}

// PressImpl presses a named key such as "enter" or "backspace".
func PressImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("press", args)
	if err != nil {
		return nil, err
	}
	k, ok := keyNames[s]
	if !ok {
		return nil, errors.New("press: unknown key " + s)
	}
	return golisp.BooleanWithValue(current.doc.KeyPressed(k, 0)), nil
}

func arrow(k types.Key) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.BooleanWithValue(current.doc.KeyPressed(k, 0)), nil
	}
}

func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.BooleanWithValue(current.Undo()), nil
}

func RedoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.BooleanWithValue(current.Redo()), nil
}

// CommandImpl runs a command line and returns the resulting message.
func CommandImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("command", args)
	if err != nil {
		return nil, err
	}
	current.message = ""
	current.command = s
	current.PerformCommand()
	return golisp.StringWithValue(current.message), nil
}

func OutlineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(outline.String(current.doc)), nil
}

// ParseEval evaluates one expression and describes its value.
func (c *Commander) ParseEval(command string) string {
	bind(c)
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	bind(c)
	value, err := golisp.ParseAndEval("(begin\n" + string(b) + "\n)")
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}
