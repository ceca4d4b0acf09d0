// Package loader bulk-loads an initial key set into the ordered index
// from a newline-delimited text source.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bptree/bptree"

	"github.com/golang/glog"
	"github.com/golang/snappy"
)

// Result summarizes one load run.
type Result struct {
	LinesRead    int
	KeysInserted int
	Skipped      int // blank lines discarded
}

// Load reads path line by line and inserts every non-blank line, with
// surrounding whitespace trimmed, into the tree in source order. Sources
// ending in .sz or .snappy are decompressed on the fly.
//
// An unreadable source is reported as an error and leaves the tree as it
// was; a read error mid-stream leaves the keys inserted so far in place.
// A key is always inserted fully or not at all.
func Load(tree *bptree.Tree[string], path string) (*Result, error) {
	if tree == nil {
		return nil, fmt.Errorf("loader: tree cannot be nil")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to open key source %q: %w", path, err)
	}
	defer file.Close()

	var src io.Reader = file
	switch filepath.Ext(path) {
	case ".sz", ".snappy":
		src = snappy.NewReader(file)
	}

	glog.Infof("loading keys from %q", path)

	result := &Result{}
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		result.LinesRead++

		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			result.Skipped++
			continue
		}

		tree.Insert(key)
		result.KeysInserted++
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("loader: error reading key source %q: %w", path, err)
	}

	glog.Infof("loaded %d keys from %q (%d lines, %d blank)",
		result.KeysInserted, path, result.LinesRead, result.Skipped)

	return result, nil
}
