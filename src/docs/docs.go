// Package docs loads the local document corpus used for local-source
// research jobs.
package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Byte caps keep a single research job from swallowing an arbitrarily large
// directory. Files beyond the per-file cap are truncated; loading stops once
// the total cap is reached.
const (
	MaxFileBytes  = 256 << 10
	MaxTotalBytes = 2 << 20
)

// textExtensions lists the file types treated as readable source material.
var textExtensions = map[string]struct{}{
	".md":   {},
	".txt":  {},
	".rst":  {},
	".csv":  {},
	".json": {},
	".log":  {},
}

// Document is one loaded file. Path is relative to the corpus root.
type Document struct {
	Path    string
	Content string
}

// Load walks dir in lexical order and returns the readable documents found.
// A missing directory or a directory with no readable documents is an
// error, since a local research job would otherwise run on nothing.
func Load(dir string) ([]Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("document directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("document path %s is not a directory", dir)
	}

	var (
		documents []Document
		total     int
	)
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if _, ok := textExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			return nil
		}
		if total >= MaxTotalBytes {
			return filepath.SkipAll
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document %s: %w", path, err)
		}
		if len(data) > MaxFileBytes {
			data = data[:MaxFileBytes]
		}
		if total+len(data) > MaxTotalBytes {
			data = data[:MaxTotalBytes-total]
		}
		total += len(data)

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		content := strings.TrimSpace(string(data))
		if content == "" {
			return nil
		}
		documents = append(documents, Document{Path: rel, Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("no readable documents in %s", dir)
	}
	return documents, nil
}
