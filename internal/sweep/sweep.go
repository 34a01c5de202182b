// Package sweep turns a working tree's pending changes into one commit per
// path, then pushes.
//
// Both flows are strictly sequential: every git call finishes before the next
// one starts, and a failure on one path never stops the loop.
package sweep

import (
	"context"
	"path"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
)

// Git is the subset of git operations the flows need. *git.Client implements it.
type Git interface {
	Status(ctx context.Context, untrackedAll bool) ([]models.ChangeEntry, error)
	StageAll(ctx context.Context) error
	ResetIndex(ctx context.Context) error
	Stage(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string, paths ...string) error
	Remove(ctx context.Context, path string) error
	Push(ctx context.Context, remote, branch string) error
}

// PushOptions selects where history is published.
type PushOptions struct {
	Enabled bool
	Remote  string // empty uses git's default
	Branch  string
}

// Message builds a commit message from a verb and the base name of a
// slash-separated path: Message("Add", "a/b/c.txt") == "Add c.txt".
func Message(verb, p string) string {
	return verb + " " + path.Base(p)
}

func notify(obs Observer, ev Event) {
	if obs != nil {
		obs(ev)
	}
}
