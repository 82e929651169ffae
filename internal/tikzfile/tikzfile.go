// Package tikzfile persists generated TikZ blocks into text files that may
// hold other content. Each block is delimited by a begin and an end
// sentinel line; writing a block replaces its previous version in place.
package tikzfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnterminatedBlock is returned when a begin sentinel has no matching
// end sentinel after it.
var ErrUnterminatedBlock = errors.New("begin sentinel without end sentinel")

// Replace substitutes the first region of content delimited by the lines
// begin and end (inclusive) with block. Sentinel lines match after
// trimming surrounding whitespace. When no region exists block is appended
// and replaced is false.
func Replace(content, begin, end, block string) (out string, replaced bool, err error) {
	begin, end = strings.TrimSpace(begin), strings.TrimSpace(end)
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == begin {
			start = i
			break
		}
	}
	if start < 0 {
		return appendBlock(content, block), false, nil
	}

	stop := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == end {
			stop = i
			break
		}
	}
	if stop < 0 {
		return "", false, fmt.Errorf("%w: %q at line %d", ErrUnterminatedBlock, begin, start+1)
	}

	result := make([]string, 0, len(lines))
	result = append(result, lines[:start]...)
	result = append(result, strings.Split(strings.TrimSuffix(block, "\n"), "\n")...)
	result = append(result, lines[stop+1:]...)
	return strings.Join(result, "\n"), true, nil
}

func appendBlock(content, block string) string {
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	if content == "" || strings.HasSuffix(content, "\n") {
		return content + block
	}
	return content + "\n" + block
}

// WriteBlock writes block into the file at path, replacing the region
// delimited by begin and end or appending when there is none. Missing
// files and parent directories are created. The file is replaced
// atomically through a temporary file in the same directory.
func WriteBlock(path, begin, end, block string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	mode := fs.FileMode(0o644)
	var content string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = string(data)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, replaced, err := Replace(content, begin, end, block)
	if err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()[:8]))
	if err := os.WriteFile(tmp, []byte(out), mode); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	slog.Debug("tikz block written", "path", path, "replaced", replaced)
	return nil
}
