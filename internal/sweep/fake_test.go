package sweep

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
)

var errFake = errors.New("fake git failure")

// fakeGit records each operation as a short string and fails on demand.
type fakeGit struct {
	entries     []models.ChangeEntry
	statusErr   error
	stageAllErr error
	resetErr    error
	failStage   map[string]bool // by first path
	failCommit  map[string]bool // by message
	failRemove  map[string]bool // by path; unlisted paths succeed
	pushErr     error
	onCommit    func(message string)
	calls       []string
}

func (f *fakeGit) Status(_ context.Context, untrackedAll bool) ([]models.ChangeEntry, error) {
	f.calls = append(f.calls, fmt.Sprintf("status all=%t", untrackedAll))
	return f.entries, f.statusErr
}

func (f *fakeGit) StageAll(context.Context) error {
	f.calls = append(f.calls, "add -A")
	return f.stageAllErr
}

func (f *fakeGit) ResetIndex(context.Context) error {
	f.calls = append(f.calls, "reset")
	return f.resetErr
}

func (f *fakeGit) Stage(_ context.Context, paths ...string) error {
	f.calls = append(f.calls, "add "+strings.Join(paths, " "))
	if f.failStage[paths[0]] {
		return errFake
	}
	return nil
}

func (f *fakeGit) Commit(_ context.Context, message string, paths ...string) error {
	f.calls = append(f.calls, fmt.Sprintf("commit %q %s", message, strings.Join(paths, " ")))
	if f.onCommit != nil {
		f.onCommit(message)
	}
	if f.failCommit[message] {
		return errFake
	}
	return nil
}

func (f *fakeGit) Remove(_ context.Context, path string) error {
	f.calls = append(f.calls, "rm "+path)
	if f.failRemove[path] {
		return errFake
	}
	return nil
}

func (f *fakeGit) Push(_ context.Context, remote, branch string) error {
	f.calls = append(f.calls, strings.TrimSpace("push "+remote+" "+branch))
	return f.pushErr
}

func (f *fakeGit) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// recorder collects events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) observe(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, 0, len(r.events))
	for _, ev := range r.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func (r *recorder) has(kind EventKind) bool {
	for _, ev := range r.events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
