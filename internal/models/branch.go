package models

type Branch struct {
	Name     string
	Remote   string // configured remote for the branch, if any
	Upstream string // e.g., "origin/main"
}

// Detached reports whether HEAD is not on a branch.
func (b Branch) Detached() bool {
	return b.Name == ""
}
