package sweep

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Johannes-Berggren/commitgoblin/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// setupRepo creates a repository with one pushed commit and a bare remote.
func setupRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	base := t.TempDir()
	remote := filepath.Join(base, "remote.git")
	repo := filepath.Join(base, "repo")
	require.NoError(t, os.MkdirAll(repo, 0o755))

	runGit(t, base, "init", "-q", "--bare", remote)
	runGit(t, repo, "init", "-q")
	runGit(t, repo, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, repo, "config", "user.name", "Test User")
	runGit(t, repo, "config", "user.email", "test@example.com")
	runGit(t, repo, "config", "commit.gpgsign", "false")
	runGit(t, repo, "remote", "add", "origin", remote)

	writeFile(t, repo, "base.txt")
	runGit(t, repo, "add", "base.txt")
	runGit(t, repo, "commit", "-q", "-m", "initial")
	runGit(t, repo, "push", "-q", "-u", "origin", "main")

	return repo
}

func subjects(t *testing.T, repo string) []string {
	t.Helper()
	return strings.Split(runGit(t, repo, "log", "--format=%s"), "\n")
}

func TestCommitEachAgainstGit(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(repo, "base.txt"), []byte("changed\n"), 0o644))
	writeFile(t, repo, "docs/readme.md")
	writeFile(t, repo, "a b.txt")

	client := git.NewClient(repo, nil)
	result, err := CommitEach(context.Background(), client, CommitOptions{
		Prestage: true,
		Push:     PushOptions{Enabled: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 3, result.Succeeded)
	assert.True(t, result.Pushed, "push error: %v", result.PushErr)

	assert.Equal(t, []string{"Add readme.md", "Add base.txt", "Add a b.txt", "initial"}, subjects(t, repo))
	assert.Empty(t, runGit(t, repo, "status", "--porcelain"))

	// each commit touches exactly one path
	assert.Equal(t, "docs/readme.md", runGit(t, repo, "show", "--name-only", "--format=", "HEAD"))

	remoteHead := runGit(t, repo, "rev-parse", "origin/main")
	assert.Equal(t, runGit(t, repo, "rev-parse", "HEAD"), remoteHead)
}

func TestCommitEachAgainstGitCleanTree(t *testing.T) {
	repo := setupRepo(t)
	client := git.NewClient(repo, nil)

	result, err := CommitEach(context.Background(), client, CommitOptions{
		Prestage: true,
		Push:     PushOptions{Enabled: true},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	assert.False(t, result.Pushed)
	assert.Equal(t, []string{"initial"}, subjects(t, repo))
}

func TestRemoveEachAgainstGit(t *testing.T) {
	repo := setupRepo(t)

	writeFile(t, repo, "README.md")
	writeFile(t, repo, "docs/guide.md")
	writeFile(t, repo, "node_modules/pkg/README.md")
	runGit(t, repo, "add", "README.md", "docs/guide.md")
	runGit(t, repo, "commit", "-q", "-m", "docs")
	writeFile(t, repo, "notes.md")

	paths, err := FindDocuments(repo, "*.md", []string{"node_modules"})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "docs/guide.md", "notes.md"}, paths)

	client := git.NewClient(repo, nil)
	result, err := RemoveEach(context.Background(), client, paths, RemoveOptions{
		Root: repo,
		Push: PushOptions{Enabled: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)
	// an untracked file is deleted, but git has nothing to commit for it
	assert.Equal(t, []string{"notes.md"}, result.Failed)
	assert.True(t, result.Pushed, "push error: %v", result.PushErr)

	assert.Equal(t, []string{"Remove guide.md", "Remove README.md", "docs", "initial"}, subjects(t, repo))
	assert.NoFileExists(t, filepath.Join(repo, "README.md"))
	assert.NoFileExists(t, filepath.Join(repo, "notes.md"))
	assert.FileExists(t, filepath.Join(repo, "node_modules", "pkg", "README.md"))
}

func TestCommitEachAgainstGitLiteralPathspec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("colon is not a valid file name character")
	}
	repo := setupRepo(t)
	writeFile(t, repo, ":notes.txt")

	client := git.NewClient(repo, nil)
	result, err := CommitEach(context.Background(), client, CommitOptions{Prestage: true})
	require.NoError(t, err)

	assert.Empty(t, result.Failed)
	assert.Equal(t, []string{"Add :notes.txt", "initial"}, subjects(t, repo))
}

func TestCommitEachAgainstGitFinishesCommandOnCancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks")
	}
	repo := setupRepo(t)
	hook := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.MkdirAll(filepath.Dir(hook), 0o755))
	require.NoError(t, os.WriteFile(hook, []byte("#!/bin/sh\nsleep 1\n"), 0o755))

	writeFile(t, repo, "one.txt")
	writeFile(t, repo, "two.txt")
	before := runGit(t, repo, "rev-parse", "origin/main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := git.NewClient(repo, nil)
	result, err := CommitEach(ctx, client, CommitOptions{
		Prestage: true,
		Push:     PushOptions{Enabled: true},
		Observer: func(ev Event) {
			if ev.Kind == EventStart && ev.Index == 1 {
				time.AfterFunc(300*time.Millisecond, cancel)
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)

	// the commit running at cancellation completes, the next one never starts
	assert.Equal(t, 1, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.Equal(t, []string{"Add one.txt", "initial"}, subjects(t, repo))
	assert.NoFileExists(t, filepath.Join(repo, ".git", "index.lock"))

	assert.False(t, result.Pushed)
	assert.Equal(t, before, runGit(t, repo, "rev-parse", "origin/main"))
}
