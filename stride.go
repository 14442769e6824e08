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
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/stride/commander"
	"github.com/timburks/stride/config"
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/editor"
	"github.com/timburks/stride/history"
	"github.com/timburks/stride/operations"
	"github.com/timburks/stride/outline"
	"github.com/timburks/stride/screen"
	"github.com/timburks/stride/types"
)

func main() {

	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			log.Printf("Unknown argument %q", argi)
			return
		}
	}

	cfg := config.NewConfig(log.Default())
	if err := cfg.Init(config.Dir()); err != nil {
		log.Printf("%+v", err)
		if cfg.Settings, err = config.Defaults(); err != nil {
			log.Output(1, err.Error())
			return
		}
	}

	// The document holds the frames being edited.
	d := editor.NewDocument(dictionary.Default())
	h := history.New(d)
	apply(cfg.Settings, d, h)
	d.Root().CanvasFor(types.PartMethods).FirstCursor().RequestFocus()

	// The commander converts user inputs into commands for the document.
	c := commander.NewCommander(d, h, &operations.Clipboard{System: script == ""})

	if script != "" {
		// Run a script and print the resulting outline.
		if _, err := c.ParseEvalFile(script); err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		fmt.Print(outline.String(d))
		return
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(filepath.Join(os.Getenv("HOME"), cfg.Settings.LogFile), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Settings changes interrupt the event loop.
	changes, err := cfg.Watch(screen.Interrupt)
	if err != nil {
		log.Printf("%+v", err)
	}
	defer cfg.Cleanup()

	// Run the main event loop.
	w := screen.NewWindow("untitled")
	for c.IsRunning() {
		w.SetLines(outline.Render(d))
		w.SetSelection(d.Selection().Frames())
		s.Render(w, c)
		event := s.GetNextEvent()
		if event.Type == types.EventInterrupt {
			select {
			case settings, ok := <-changes:
				if ok {
					apply(settings, d, h)
				}
			default:
			}
			continue
		}
		if err := c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
}

// apply installs settings read from the configuration file.
func apply(s *config.Settings, d *editor.Document, h *history.History) {
	dict, err := s.Dictionary(dictionary.Default())
	if err != nil {
		log.Printf("config: %v", err)
	} else {
		d.SetDictionary(dict)
	}
	d.SetCatalogTrigger(s.CatalogTrigger)
	h.SetLimit(s.UndoLimit)
}
