// Package gitstatus inspects project directories for git repository
// state via the git subprocess. Every failure degrades to "not a
// repository" so project listing never aborts on a broken checkout.
package gitstatus

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Status describes the git state of one project directory.
type Status struct {
	IsRepo bool
	Branch string
	Dirty  bool
}

// Detect returns the git status of the directory at path. A missing
// directory, a non-repo or a failing git binary all yield a zero-value
// Status with IsRepo false.
func Detect(path string) Status {
	if FindRoot(path) == "" {
		return Status{}
	}

	st := Status{IsRepo: true, Branch: currentBranch(path)}

	out, err := run(path, "status", "--porcelain=v1")
	if err == nil && strings.TrimSpace(out) != "" {
		st.Dirty = true
	}
	return st
}

// FindRoot walks up from path looking for a .git entry and returns the
// containing directory, or "" when none is found.
func FindRoot(path string) string {
	current := path
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return ""
}

// currentBranch returns the checked-out branch name, defaulting to
// "main" when git cannot answer.
func currentBranch(path string) string {
	out, err := run(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "main"
	}
	return strings.TrimSpace(out)
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	return string(output), err
}
