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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/history"
	"github.com/timburks/stride/operations"
	"github.com/timburks/stride/outline"
	"github.com/timburks/stride/types"
)

// The Commander converts user input into commands for a Document.
type Commander struct {
	doc        *editor.Document
	history    *history.History
	ops        []operations.Operation
	mode       int    // editor mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	command    string // command as it is being typed on the command line
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
	panel      []string
	mark       string // outline saved by :mark for :diff

	last     operations.Operation // last performed operation, for repeat
	lastMult int

	preview       operations.Previewer
	previewTarget operations.Target
}

func NewCommander(d *editor.Document, h *history.History, clip *operations.Clipboard) *Commander {
	c := &Commander{
		doc:     d,
		history: h,
		ops:     operations.Standard(clip),
		mode:    types.ModeEdit,
		mark:    outline.String(d),
	}
	d.AddObserver(c)
	bind(c)
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	case types.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *types.Event) error {
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *types.Event) error {
	d := c.doc

	key := event.Key
	ch := event.Ch

	if ch != 0 && event.Mod&types.ModAlt != 0 {
		d.ModifierKey(ch)
		return nil
	}
	if key != 0 {
		switch key {
		case types.KeyCtrlZ:
			c.Undo()
		case types.KeyCtrlY:
			c.Redo()
		case types.KeyCtrlK:
			d.SelectUp()
		case types.KeyCtrlJ:
			d.SelectDown()
		default:
			if key == types.KeyEsc {
				c.panel = nil
			}
			d.KeyPressed(key, event.Mod)
		}
		return nil
	}
	if ch == 0 {
		return nil
	}
	// slots take every character as text
	if d.FocusedCursor() != nil {
		switch ch {
		//
		// multipliers are used by paste and repeat
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
			return nil
		case ':':
			c.mode = types.ModeCommand
			c.command = ""
			return nil
		case '(':
			c.mode = types.ModeLisp
			c.lispText = "("
			return nil
		case '.':
			c.Repeat()
			return nil
		}
	}
	d.KeyTyped(ch)
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
			c.command = ""
		case types.KeyEnter:
			c.clearPreview()
			c.PerformCommand()
			return nil
		case types.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case types.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	c.updatePreview()
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.mode = types.ModeEdit
			c.message = c.ParseEval(c.lispText)
		case types.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case types.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKey(event *types.Event) error {
	var err error
	switch c.mode {
	case types.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case types.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case types.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

// The enable and disable commands show their effect while being typed.
func (c *Commander) updatePreview() {
	c.clearPreview()
	p, ok := operations.Named(c.ops, strings.TrimSpace(c.command)).(operations.Previewer)
	if !ok || c.mode != types.ModeCommand {
		return
	}
	c.preview = p
	c.previewTarget = operations.TargetOf(c.doc)
	p.Preview(c.previewTarget, true)
}

func (c *Commander) clearPreview() {
	if c.preview != nil {
		c.preview.Preview(c.previewTarget, false)
		c.preview = nil
	}
}

func (c *Commander) PerformCommand() {
	parts := strings.Fields(c.command)
	c.command = ""
	c.mode = types.ModeEdit
	if len(parts) == 0 {
		return
	}
	if op := operations.Named(c.ops, parts[0]); op != nil {
		c.Perform(op, c.Multiplier())
		return
	}
	switch parts[0] {
	case "q":
		c.mode = types.ModeQuit
	case "undo":
		c.Undo()
	case "redo":
		c.Redo()
	case "catalog":
		if cur := c.doc.FocusedCursor(); cur != nil {
			c.showCatalog(cur)
		} else {
			c.message = "catalog: no cursor"
		}
	case "ops":
		c.panel = nil
		for _, op := range operations.ForTarget(c.ops, operations.TargetOf(c.doc)) {
			c.panel = append(c.panel, op.Name())
		}
	case "mark":
		c.mark = outline.String(c.doc)
		c.message = "marked"
	case "diff":
		diff, err := outline.Diff(c.mark, outline.String(c.doc), "mark", "current")
		if err != nil {
			c.message = err.Error()
		} else if diff == "" {
			c.message = "no changes"
		} else {
			c.panel = strings.Split(strings.TrimRight(diff, "\n"), "\n")
		}
	case "w":
		if len(parts) != 2 {
			c.message = "w: file name required"
			return
		}
		text := outline.String(c.doc)
		if err := os.WriteFile(parts[1], []byte(text), 0644); err != nil {
			c.message = err.Error()
		} else {
			c.message = fmt.Sprintf("%q %d lines", parts[1], strings.Count(text, "\n"))
		}
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
				c.message = ""
			}
		}
	default:
		c.message = "unknown command: " + parts[0]
	}
}

// Perform runs op on the current target and remembers it for Repeat.
func (c *Commander) Perform(op operations.Operation, multiplier int) bool {
	if !op.Perform(operations.TargetOf(c.doc), multiplier) {
		c.message = op.Name() + ": not applicable"
		return false
	}
	c.last = op
	c.lastMult = multiplier
	c.message = ""
	return true
}

func (c *Commander) Repeat() bool {
	mult := c.lastMult
	if c.multiplier != "" {
		mult = c.Multiplier()
	}
	if c.last == nil {
		c.message = "nothing to repeat"
		return false
	}
	return c.Perform(c.last, mult)
}

func (c *Commander) Undo() bool {
	if !c.history.Undo() {
		c.message = "nothing to undo"
		return false
	}
	return true
}

func (c *Commander) Redo() bool {
	if !c.history.Redo() {
		c.message = "nothing to redo"
		return false
	}
	return true
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.Atoi(c.multiplier)
	c.multiplier = ""
	switch {
	case errors.Is(err, strconv.ErrRange), i > operations.MaxMultiplier:
		return operations.MaxMultiplier
	case err != nil, i < 1:
		return 1
	}
	return i
}

func (c *Commander) showCatalog(cur *editor.Cursor) {
	c.panel = nil
	for _, item := range c.doc.Catalog(cur) {
		c.panel = append(c.panel, fmt.Sprintf("%-6s %s", keyName(item.Key), item.Label))
	}
}

func keyName(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\n':
		return "enter"
	case '\b':
		return "bksp"
	}
	return string(r)
}

func (c *Commander) FrameModified(f *editor.Frame) {
	c.panel = nil
}

func (c *Commander) FocusChanged(target editor.Focusable) {
	c.panel = nil
}

func (c *Commander) ShowCatalog(cur *editor.Cursor) {
	c.showCatalog(cur)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}

// GetPanel returns the lines shown beside the document: a catalog, an
// operation list or a diff.
func (c *Commander) GetPanel() []string {
	return c.panel
}
