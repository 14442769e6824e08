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
package screen

import (
	"github.com/nsf/termbox-go"
	"github.com/timburks/stride/types"
)

// Status is what the screen shows around the document.
type Status interface {
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
	GetPanel() []string
}

// The Screen draws a Window and the commander's status on the terminal.
type Screen struct {
	size types.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(w *Window, st Status) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize types.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	panel := st.GetPanel()
	pw := panelWidth(panel, s.size.Cols)
	w.SetSize(types.Point{}, types.Size{Rows: s.size.Rows - 1, Cols: s.size.Cols - pw})
	w.Render(s)
	if pw > 0 {
		renderPanel(s, panel,
			types.Point{Row: 0, Col: s.size.Cols - pw},
			types.Size{Rows: s.size.Rows - 2, Cols: pw})
	}
	col := s.RenderMessageBar(st)
	if st.GetMode() == types.ModeEdit {
		p := w.CursorPosition()
		termbox.SetCursor(p.Col, p.Row)
	} else {
		termbox.SetCursor(col, s.size.Rows-1)
	}
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.Attribute(types.ColorBlack))
}

func (s *Screen) SetCellReversed(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.Attribute(types.ColorWhite))
}

// RenderMessageBar draws the command line or the latest message and
// returns the column after it.
func (s *Screen) RenderMessageBar(st Status) int {
	var line string
	switch st.GetMode() {
	case types.ModeCommand:
		line += ":" + st.GetCommand()
	case types.ModeLisp:
		line += st.GetLispText()
	default:
		line += st.GetMessage()
	}
	runes := []rune(line)
	if len(runes) > s.size.Cols {
		runes = runes[0:s.size.Cols]
	}
	for x, ch := range runes {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
	return len(runes)
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize}
	case termbox.EventInterrupt:
		return &types.Event{Type: types.EventInterrupt}
	}
	var mod types.Modifier
	if event.Mod&termbox.ModAlt != 0 {
		mod |= types.ModAlt
	}
	return &types.Event{
		Type: types.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
		Mod:  mod,
	}
}

// Interrupt wakes a goroutine blocked in GetNextEvent.
func Interrupt() {
	termbox.Interrupt()
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyCtrlJ:
		return types.KeyCtrlJ
	case termbox.KeyCtrlK:
		return types.KeyCtrlK
	case termbox.KeyCtrlY:
		return types.KeyCtrlY
	case termbox.KeyCtrlZ:
		return types.KeyCtrlZ
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
