package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fileChangedMsg arrives when the watched data file is rewritten.
type fileChangedMsg struct{}

// watchErrMsg carries a watcher failure into the update loop.
type watchErrMsg struct{ err error }

// newWatcher watches the directory containing path rather than the file
// itself, so editors that replace the file via rename keep triggering
// events.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// waitForChange blocks on the next relevant filesystem event for path. The
// returned command is re-armed after every fileChangedMsg.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	abs, _ := filepath.Abs(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				evPath, _ := filepath.Abs(ev.Name)
				if evPath != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
