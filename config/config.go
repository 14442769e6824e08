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
// Package config reads the editor settings from a JSON file in the
// user's configuration directory and watches it for changes.
package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/timburks/stride/dictionary"
)

//go:embed config.json
var config embed.FS

const confName = "config.json"

type Settings struct {
	CatalogTrigger int               `json:"catalogTrigger"`
	UndoLimit      int               `json:"undoLimit"`
	LogFile        string            `json:"logFile"`
	Shortcuts      map[string]string `json:"shortcuts"`
	Extensions     map[string]string `json:"extensions"`
}

// Dictionary applies the shortcut and extension overrides to base.
func (s *Settings) Dictionary(base *dictionary.Dictionary) (*dictionary.Dictionary, error) {
	return base.Override(s.Shortcuts, s.Extensions)
}

type Config struct {
	log      *log.Logger
	dir      string
	watcher  *fsnotify.Watcher
	done     chan struct{}
	Settings *Settings
}

func NewConfig(log *log.Logger) *Config {
	return &Config{log: log}
}

// Dir returns $XDG_CONFIG_HOME/stride, or ~/.stride.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stride")
	}
	return filepath.Join(os.Getenv("HOME"), ".stride")
}

// File returns the path of the configuration file.
func (cfg *Config) File() string {
	return filepath.Join(cfg.dir, confName)
}

// Init writes the default configuration to dir if there is none and
// reads it.
func (cfg *Config) Init(dir string) error {
	cfg.dir = dir
	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	s, err := cfg.readConfig()
	if err != nil {
		return err
	}
	cfg.Settings = s
	return nil
}

func (cfg *Config) writeConfigIfMissing() error {
	if _, err := os.Stat(cfg.File()); err == nil {
		return nil
	}
	content, err := fs.ReadFile(config, confName)
	if err != nil {
		return fmt.Errorf("could not read embedded config file: %w", err)
	}
	if err := os.MkdirAll(cfg.dir, 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	if err := os.WriteFile(cfg.File(), content, 0664); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("could not write config file: %w", err)
	}
	return nil
}

// Defaults returns the embedded settings.
func Defaults() (*Settings, error) {
	content, err := fs.ReadFile(config, confName)
	if err != nil {
		return nil, err
	}
	s := &Settings{}
	if err := json.Unmarshal(content, s); err != nil {
		return nil, err
	}
	return s, nil
}

// readConfig reads the file over the embedded defaults.
func (cfg *Config) readConfig() (*Settings, error) {
	s, err := Defaults()
	if err != nil {
		return nil, fmt.Errorf("could not read embedded config file: %w", err)
	}
	content, err := os.ReadFile(cfg.File())
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(content, s); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", cfg.File(), err)
	}
	if s.CatalogTrigger < 1 {
		s.CatalogTrigger = 1
	}
	return s, nil
}

// Watch rereads the file whenever it is written. New settings are sent
// on the returned channel and then notify is called, so that a blocked
// event loop wakes up to apply them. Files that fail to parse are logged
// and skipped.
func (cfg *Config) Watch(notify func()) (<-chan *Settings, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if err := watcher.Add(cfg.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch config file: %w", err)
	}
	cfg.watcher = watcher
	cfg.done = make(chan struct{})
	changes := make(chan *Settings, 1)
	go cfg.rereadConfigOnFileChange(changes, notify)
	return changes, nil
}

func (cfg *Config) rereadConfigOnFileChange(changes chan<- *Settings, notify func()) {
	defer close(changes)
	for {
		select {
		case event, ok := <-cfg.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != confName || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			s, err := cfg.readConfig()
			if err != nil {
				cfg.log.Printf("config: %v", err)
				continue
			}
			select {
			case changes <- s:
			case <-cfg.done:
				return
			}
			if notify != nil {
				notify()
			}
		case err, ok := <-cfg.watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Printf("config watcher: %v", err)
		case <-cfg.done:
			return
		}
	}
}

// Cleanup stops watching.
func (cfg *Config) Cleanup() {
	if cfg.watcher == nil {
		return
	}
	close(cfg.done)
	cfg.watcher.Close()
	cfg.watcher = nil
}
