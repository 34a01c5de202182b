package sweep

import (
	"context"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
)

// Pusher publishes committed history.
type Pusher interface {
	Push(ctx context.Context, remote, branch string) error
}

// Push runs a single push and reports it to obs. There is no retry.
func Push(ctx context.Context, p Pusher, opts PushOptions, obs Observer) error {
	emit := func(ev Event) {
		ev.Flow = FlowPush
		notify(obs, ev)
	}

	emit(Event{Kind: EventPushStart})
	if err := p.Push(ctx, opts.Remote, opts.Branch); err != nil {
		emit(Event{Kind: EventPushFailed, Err: err})
		return err
	}
	emit(Event{Kind: EventPushDone})
	return nil
}

// publish is the push step that closes a run.
func publish(ctx context.Context, p Pusher, opts PushOptions, dryRun bool, result *models.RunResult, obs Observer) {
	if !opts.Enabled || dryRun {
		notify(obs, Event{Kind: EventPushSkipped, Flow: FlowPush})
		return
	}

	if err := Push(ctx, p, opts, obs); err != nil {
		result.PushErr = err
		return
	}
	result.Pushed = true
}
