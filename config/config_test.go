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
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/stride/dictionary"
	"github.com/timburks/stride/types"
)

func newConfig(t *testing.T) *Config {
	cfg := NewConfig(log.New(io.Discard, "", 0))
	if err := cfg.Init(filepath.Join(t.TempDir(), "stride")); err != nil {
		t.Fatalf("Init failed: %+v", err)
	}
	return cfg
}

func TestInitWritesDefaults(t *testing.T) {
	cfg := newConfig(t)
	if _, err := os.Stat(cfg.File()); err != nil {
		t.Errorf("Config file was not written: %v", err)
	}
	want := &Settings{
		CatalogTrigger: 2,
		UndoLimit:      100,
		LogFile:        ".stridelog",
		Shortcuts:      map[string]string{},
		Extensions:     map[string]string{},
	}
	if diff := cmp.Diff(want, cfg.Settings); diff != "" {
		t.Errorf("Unexpected settings (-want +got):\n%s", diff)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	cfg := newConfig(t)
	content := `{"catalogTrigger": 0, "shortcuts": {"while": "W"}}`
	if err := os.WriteFile(cfg.File(), []byte(content), 0664); err != nil {
		t.Fatalf("WriteFile failed: %+v", err)
	}
	s, err := cfg.readConfig()
	if err != nil {
		t.Fatalf("readConfig failed: %+v", err)
	}
	if s.CatalogTrigger != 1 || s.UndoLimit != 100 || s.Shortcuts["while"] != "W" {
		t.Errorf("Unexpected settings %+v", s)
	}

	dict, err := s.Dictionary(dictionary.Default())
	if err != nil {
		t.Fatalf("Dictionary failed: %+v", err)
	}
	if e, _ := dict.Entry(types.KindWhile); e.Key != 'W' {
		t.Errorf("While shortcut is %q", e.Key)
	}
}

func TestBadFile(t *testing.T) {
	cfg := newConfig(t)
	os.WriteFile(cfg.File(), []byte("{"), 0664)
	if _, err := cfg.readConfig(); err == nil {
		t.Errorf("Broken file was read")
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if Dir() != "/tmp/xdg/stride" {
		t.Errorf("Dir is %s", Dir())
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	if Dir() != "/home/someone/.stride" {
		t.Errorf("Dir is %s", Dir())
	}
}

func TestWatch(t *testing.T) {
	cfg := newConfig(t)
	woken := make(chan bool, 4)
	changes, err := cfg.Watch(func() { woken <- true })
	if err != nil {
		t.Fatalf("Watch failed: %+v", err)
	}
	defer cfg.Cleanup()

	if err := os.WriteFile(cfg.File(), []byte(`{"catalogTrigger": 5}`), 0664); err != nil {
		t.Fatalf("WriteFile failed: %+v", err)
	}
	select {
	case s := <-changes:
		if s.CatalogTrigger != 5 {
			t.Errorf("Reloaded trigger is %d", s.CatalogTrigger)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("No settings after the file changed")
	}
	select {
	case <-woken:
	case <-time.After(5 * time.Second):
		t.Errorf("Watcher did not wake the event loop")
	}
}
