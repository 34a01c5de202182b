package sweep

import (
	"context"

	"github.com/Johannes-Berggren/commitgoblin/internal/log"
	"github.com/Johannes-Berggren/commitgoblin/internal/models"
	"go.uber.org/zap"
)

// CommitOptions configures CommitEach.
type CommitOptions struct {
	// Prestage runs "git add -A" before listing and "git reset" after so new
	// files in untracked directories are listed individually.
	Prestage bool
	Verb     string // defaults to "Add"
	DryRun   bool
	Push     PushOptions
	Observer Observer
}

// CommitEach commits every changed path on its own, in listing order, then
// pushes once. The returned error is non-nil only when the listing itself
// could not be produced or ctx was cancelled; per-path failures are recorded
// in the result. Cancellation takes effect between paths and skips the push.
func CommitEach(ctx context.Context, g Git, opts CommitOptions) (*models.RunResult, error) {
	verb := opts.Verb
	if verb == "" {
		verb = "Add"
	}
	emit := func(ev Event) {
		ev.Flow = FlowCommit
		notify(opts.Observer, ev)
	}

	entries, err := scan(ctx, g, opts, emit)
	if err != nil {
		return nil, err
	}

	result := &models.RunResult{}
	if len(entries) == 0 {
		emit(Event{Kind: EventNothing})
		return result, nil
	}

	total := len(entries)
	emit(Event{Kind: EventFound, Total: total})

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ev := Event{Index: i + 1, Total: total, Path: entry.Path, Message: Message(verb, entry.Path)}

		if opts.DryRun {
			ev.Kind = EventPlanned
			emit(ev)
			continue
		}

		ev.Kind = EventStart
		emit(ev)

		if err := commitEntry(ctx, g, entry, ev.Message); err != nil {
			log.L().Debug("commit entry failed", zap.String("path", entry.Path), zap.Error(err))
			result.RecordFailure(entry.Path)
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

// scan produces the listing, pre-staging around it when asked.
func scan(ctx context.Context, g Git, opts CommitOptions, emit func(Event)) ([]models.ChangeEntry, error) {
	if !opts.Prestage || opts.DryRun {
		return g.Status(ctx, true)
	}

	emit(Event{Kind: EventPrestage})
	if err := g.StageAll(ctx); err != nil {
		emit(Event{Kind: EventWarning, Err: err})
	}

	entries, statusErr := g.Status(ctx, false)

	emit(Event{Kind: EventUnstage})
	if err := g.ResetIndex(ctx); err != nil {
		emit(Event{Kind: EventWarning, Err: err})
	}

	if statusErr != nil {
		return nil, statusErr
	}
	return entries, nil
}

// commitEntry stages one entry and commits only its paths.
func commitEntry(ctx context.Context, g Git, entry models.ChangeEntry, message string) error {
	paths := entry.Paths()
	if err := g.Stage(ctx, paths...); err != nil {
		return err
	}
	return g.Commit(ctx, message, paths...)
}
