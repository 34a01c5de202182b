package models

type FileStatus string

const (
	StatusUnmodified FileStatus = " "
	StatusModified   FileStatus = "M"  // Modified
	StatusAdded      FileStatus = "A"  // Added (staged new file)
	StatusDeleted    FileStatus = "D"  // Deleted
	StatusRenamed    FileStatus = "R"  // Renamed
	StatusCopied     FileStatus = "C"  // Copied
	StatusUntracked  FileStatus = "??" // Untracked
)

// ChangeEntry is one line of porcelain status output.
type ChangeEntry struct {
	Path       string
	StatusCode string // two status characters, e.g. " M", "??", "R "
	OrigPath   string // source path of a rename or copy
}

// Staged returns the index status character.
func (e ChangeEntry) Staged() FileStatus {
	if len(e.StatusCode) < 1 {
		return StatusUnmodified
	}
	return FileStatus(e.StatusCode[:1])
}

// Worktree returns the working tree status character.
func (e ChangeEntry) Worktree() FileStatus {
	if len(e.StatusCode) < 2 {
		return StatusUnmodified
	}
	return FileStatus(e.StatusCode[1:2])
}

func (e ChangeEntry) IsUntracked() bool {
	return FileStatus(e.StatusCode) == StatusUntracked
}

// IsRenameOrCopy reports whether either status column records a rename or
// copy, the only lines that carry a source path.
func (e ChangeEntry) IsRenameOrCopy() bool {
	for _, status := range []FileStatus{e.Staged(), e.Worktree()} {
		if status == StatusRenamed || status == StatusCopied {
			return true
		}
	}
	return false
}

// Paths returns every path the entry touches, new path first.
func (e ChangeEntry) Paths() []string {
	if e.OrigPath != "" && e.OrigPath != e.Path {
		return []string{e.Path, e.OrigPath}
	}
	return []string{e.Path}
}

func (e ChangeEntry) DisplayStatus() string {
	if e.IsUntracked() {
		return "??"
	}

	staged := " "
	working := " "

	if s := e.Staged(); s != "" {
		staged = string(s)
	}
	if w := e.Worktree(); w != "" {
		working = string(w)
	}

	return staged + working
}
