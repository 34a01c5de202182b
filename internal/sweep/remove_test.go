package sweep

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("# "+rel+"\n"), 0o644))
}

func TestRemoveEachTracked(t *testing.T) {
	g := &fakeGit{}
	rec := &recorder{}

	result, err := RemoveEach(context.Background(), g, []string{"docs/a.md", "b.md"}, RemoveOptions{
		Root:     t.TempDir(),
		Push:     PushOptions{Enabled: true},
		Observer: rec.observe,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rm docs/a.md",
		`commit "Remove a.md" docs/a.md`,
		"rm b.md",
		`commit "Remove b.md" b.md`,
		"push",
	}, g.calls)
	assert.Equal(t, 2, result.Succeeded)
	assert.True(t, result.Pushed)
	assert.Equal(t, FlowRemove, rec.events[0].Flow)
}

func TestRemoveEachFallsBackToDisk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes/untracked.md")

	g := &fakeGit{failRemove: map[string]bool{"notes/untracked.md": true}}
	rec := &recorder{}

	result, err := RemoveEach(context.Background(), g, []string{"notes/untracked.md"}, RemoveOptions{
		Root:     root,
		Observer: rec.observe,
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, "notes", "untracked.md"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, []string{
		"rm notes/untracked.md",
		`commit "Remove untracked.md" notes/untracked.md`,
	}, g.calls)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Succeeded)
	assert.True(t, rec.has(EventDeleted))
}

func TestRemoveEachSkipsMissing(t *testing.T) {
	g := &fakeGit{failRemove: map[string]bool{"gone.md": true}}
	rec := &recorder{}

	result, err := RemoveEach(context.Background(), g, []string{"gone.md", "kept.md"}, RemoveOptions{
		Root:     t.TempDir(),
		Observer: rec.observe,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rm gone.md",
		"rm kept.md",
		`commit "Remove kept.md" kept.md`,
	}, g.calls)
	assert.Equal(t, []string{"gone.md"}, result.Skipped)
	assert.Equal(t, 1, result.Attempted)
	assert.True(t, result.OK())
	assert.True(t, rec.has(EventSkipped))
}

func TestRemoveEachCommitFailureContinues(t *testing.T) {
	g := &fakeGit{
		failCommit: map[string]bool{"Remove a.md": true},
		pushErr:    errFake,
	}

	result, err := RemoveEach(context.Background(), g, []string{"a.md", "b.md"}, RemoveOptions{
		Root: t.TempDir(),
		Push: PushOptions{Enabled: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md"}, result.Failed)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, g.count("push"))
	assert.ErrorIs(t, result.PushErr, errFake)
}

func TestRemoveEachNothing(t *testing.T) {
	g := &fakeGit{}
	rec := &recorder{}

	result, err := RemoveEach(context.Background(), g, nil, RemoveOptions{
		Push:     PushOptions{Enabled: true},
		Observer: rec.observe,
	})
	require.NoError(t, err)

	assert.Empty(t, g.calls)
	assert.Zero(t, result.Attempted)
	assert.Equal(t, []EventKind{EventNothing}, rec.kinds())
}

func TestRemoveEachDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md")
	g := &fakeGit{}

	result, err := RemoveEach(context.Background(), g, []string{"a.md"}, RemoveOptions{
		Root:   root,
		DryRun: true,
		Push:   PushOptions{Enabled: true},
	})
	require.NoError(t, err)

	assert.Empty(t, g.calls)
	assert.Zero(t, result.Attempted)
	assert.FileExists(t, filepath.Join(root, "a.md"))
}

func TestRemoveEachCustomVerb(t *testing.T) {
	g := &fakeGit{}

	_, err := RemoveEach(context.Background(), g, []string{"x/y.md"}, RemoveOptions{Verb: "Drop"})
	require.NoError(t, err)
	assert.Contains(t, g.calls, `commit "Drop y.md" x/y.md`)
}

func TestRemoveEachCancelledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &fakeGit{onCommit: func(message string) {
		if message == "Remove a.md" {
			cancel()
		}
	}}

	result, err := RemoveEach(ctx, g, []string{"a.md", "b.md"}, RemoveOptions{Push: PushOptions{Enabled: true}})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, g.count("rm b.md"))
	assert.Zero(t, g.count("push"))
}
