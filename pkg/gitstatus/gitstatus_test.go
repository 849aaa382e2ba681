package gitstatus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	tmpDir := t.TempDir()

	repo := filepath.Join(tmpDir, "repo")
	nested := filepath.Join(repo, "src", "deep")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if got := FindRoot(nested); got != repo {
		t.Errorf("FindRoot(%s) = %q, want %q", nested, got, repo)
	}

	outside := filepath.Join(tmpDir, "plain")
	if err := os.MkdirAll(outside, 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if got := FindRoot(outside); got != "" {
		// The temp dir itself may live under a repo on a developer
		// machine; only fail when the reported root is inside tmpDir.
		if filepath.Dir(got) == tmpDir || got == outside {
			t.Errorf("FindRoot(%s) = %q, want no repo", outside, got)
		}
	}
}

func TestDetectNonRepo(t *testing.T) {
	tmpDir := t.TempDir()

	st := Detect(tmpDir)
	if st.IsRepo && FindRoot(tmpDir) == "" {
		t.Error("Detect reported a repo for a plain directory")
	}
	if !st.IsRepo {
		if st.Branch != "" {
			t.Errorf("expected empty branch for non-repo, got %q", st.Branch)
		}
		if st.Dirty {
			t.Error("expected clean state for non-repo")
		}
	}
}
