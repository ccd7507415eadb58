package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner discovers mbox files under a directory tree. Gmail Takeout
// exports nest them under Takeout/Mail/, one file per label.
type Scanner struct {
	rootPath string
}

// NewScanner creates a new scanner for the given root path.
func NewScanner(rootPath string) *Scanner {
	return &Scanner{
		rootPath: rootPath,
	}
}

// Scan recursively collects .mbox files and returns their absolute paths,
// sorted for a deterministic processing order.
func (s *Scanner) Scan() ([]string, error) {
	absRoot, err := filepath.Abs(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute root path: %w", err)
	}

	var mboxFiles []string
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ".mbox" {
			mboxFiles = append(mboxFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	sort.Strings(mboxFiles)
	return mboxFiles, nil
}

// CountMboxFiles counts the .mbox files under the root without collecting them.
func (s *Scanner) CountMboxFiles() (int, error) {
	count := 0

	err := filepath.Walk(s.rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.ToLower(filepath.Ext(path)) == ".mbox" {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}

	return count, nil
}
