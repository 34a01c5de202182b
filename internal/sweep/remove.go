package sweep

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Johannes-Berggren/commitgoblin/internal/log"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"go.uber.org/zap"
)

// RemoveOptions configures RemoveEach.
type RemoveOptions struct {
	Root     string // working tree root the paths are relative to
	Verb     string // defaults to "Remove"
	DryRun   bool
	Push     PushOptions
	Observer Observer
}

// RemoveEach removes every path from version control with one commit per
// path, then pushes once. A path git refuses to remove is deleted from disk
// and still committed; a path that is already gone is skipped. The error is
// non-nil only when ctx was cancelled, which stops the run between paths and
// skips the push.
func RemoveEach(ctx context.Context, g Git, paths []string, opts RemoveOptions) (*models.RunResult, error) {
	verb := opts.Verb
	if verb == "" {
		verb = "Remove"
	}
	emit := func(ev Event) {
		ev.Flow = FlowRemove
		notify(opts.Observer, ev)
	}

	result := &models.RunResult{}
	if len(paths) == 0 {
		emit(Event{Kind: EventNothing})
		return result, nil
	}

	total := len(paths)
	emit(Event{Kind: EventFound, Total: total})

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ev := Event{Index: i + 1, Total: total, Path: p, Message: Message(verb, p)}

		if opts.DryRun {
			ev.Kind = EventPlanned
			emit(ev)
			continue
		}

		ev.Kind = EventStart
		emit(ev)

		if err := g.Remove(ctx, p); err != nil {
			log.L().Debug("git rm failed, falling back to disk", zap.String("path", p), zap.Error(err))

			full := filepath.Join(opts.Root, filepath.FromSlash(p))
			if _, statErr := os.Lstat(full); errors.Is(statErr, fs.ErrNotExist) {
				result.RecordSkip(p)
				ev.Kind = EventSkipped
				emit(ev)
				continue
			}

			if rmErr := os.Remove(full); rmErr != nil {
				result.RecordFailure(p)
				ev.Kind = EventFailed
				ev.Err = rmErr
				emit(ev)
				continue
			}

			deleted := ev
			deleted.Kind = EventDeleted
			emit(deleted)
		}

		if err := g.Commit(ctx, ev.Message, p); err != nil {
			result.RecordFailure(p)
			ev.Kind = EventFailed
			ev.Err = err
			emit(ev)
			continue
		}

		result.RecordSuccess()
		ev.Kind = EventCommitted
		emit(ev)
	}

	emit(Event{Kind: EventFinished, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	publish(ctx, g, opts.Push, opts.DryRun, result, opts.Observer)
	return result, nil
}
