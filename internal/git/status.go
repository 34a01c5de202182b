package git

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/commitgoblin/internal/models"
)

// Status lists changed paths in the working tree. With untrackedAll set,
// files inside untracked directories are listed one by one instead of
// collapsing to the directory.
func (c *Client) Status(ctx context.Context, untrackedAll bool) ([]models.ChangeEntry, error) {
	args := []string{"status", "--porcelain=v1"}
	if untrackedAll {
		args = append(args, "--untracked-files=all")
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return ParseStatus(output), nil
}

// ParseStatus parses git status --porcelain output
// Format: XY PATH or XY ORIG -> PATH
// X = staged status, Y = working tree status
func ParseStatus(output string) []models.ChangeEntry {
	var entries []models.ChangeEntry
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		entry := models.ChangeEntry{
			StatusCode: line[:2],
			Path:       line[3:],
		}

		// Handle renames and copies (format: "R  old -> new")
		if entry.IsRenameOrCopy() {
			if orig, dest, ok := strings.Cut(entry.Path, " -> "); ok {
				entry.OrigPath = Unquote(orig)
				entry.Path = dest
			}
		}

		entry.Path = Unquote(entry.Path)
		entries = append(entries, entry)
	}

	return entries
}

// Unquote strips one pair of surrounding double quotes. Escape sequences
// inside the quotes are left as git printed them.
func Unquote(path string) string {
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		return path[1 : len(path)-1]
	}
	return path
}
