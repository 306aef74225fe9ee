// Package library finds teleprompter scripts on disk.
package library

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/ziadkadry99/prompter/internal/script"
)

// DefaultMaxFileSize bounds the files Scan considers. A script at the
// 100 000 character share limit is at most 400 KB of UTF-8.
const DefaultMaxFileSize int64 = 400 << 10

// File describes one script found by Scan.
type File struct {
	Path    string    // Absolute path on disk.
	RelPath string    // Slash-separated path relative to the root.
	Size    int64     // Size in bytes.
	ModTime time.Time // Last modification time.
}

// Config controls Scan.
type Config struct {
	RootDir     string
	Include     []string // Glob patterns; only matching files are returned.
	Exclude     []string // Glob patterns; matching files are dropped.
	MaxFileSize int64    // 0 means DefaultMaxFileSize.
}

// Scan walks cfg.RootDir and returns every text file that passes the
// include and exclude filters, sorted by relative path. Unreadable entries
// are skipped rather than failing the scan.
func Scan(cfg Config) ([]File, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("library: resolve root: %w", err)
	}

	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if !MatchesInclude(relPath, cfg.Include) || MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}
		if isBinary(path) {
			return nil
		}

		files = append(files, File{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("library: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Read loads and parses the script at path. Content that is not valid UTF-8
// is rejected.
func Read(path string) (string, script.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("library: read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", nil, fmt.Errorf("library: %s is not valid UTF-8", path)
	}
	text := string(data)
	return text, script.Parse(text), nil
}

// isBinary checks the first 512 bytes for NUL.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	return false
}
