package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitSource names a fixture corpus stored in a git repository.
type GitSource struct {
	URL string
	// Rev is any revision go-git can resolve. Empty means HEAD.
	Rev string
}

// Checkout clones the repository into cacheDir and checks out Rev, returning
// the working tree path. A checkout of an explicit revision is reused when it
// already exists; HEAD is always fetched fresh.
func (s GitSource) Checkout(cacheDir string) (string, error) {
	if s.URL == "" {
		return "", fmt.Errorf("driver: git source requires a url")
	}
	revision := s.Rev
	if revision == "" {
		revision = string(plumbing.HEAD)
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("driver: create cache %s: %w", cacheDir, err)
	}
	targetDir := filepath.Join(cacheDir, s.cacheKey(revision))
	if s.Rev != "" {
		if info, err := os.Stat(targetDir); err == nil && info.IsDir() {
			return targetDir, nil
		}
	}

	tmpDir, err := os.MkdirTemp(cacheDir, ".clone-*")
	if err != nil {
		return "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", err
	}
	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:               s.URL,
		Depth:             0,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git clone %s: %w", s.URL, err)
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	return targetDir, nil
}

func (s GitSource) cacheKey(revision string) string {
	sum := sha256.Sum256([]byte(s.URL + "@" + revision))
	return hex.EncodeToString(sum[:8])
}
