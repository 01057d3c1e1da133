// internal/remarks/remarks.go
//
// Closing-remark pool shown when a round is lost.
//
// Loading behavior (Load):
//  1. If a path is given, read one remark per line from that file.
//  2. Otherwise fall back to the embedded remarks.txt.
//
// In both cases lines are trimmed, and blank lines or lines starting with
// "#" are skipped. A pool smaller than MinPool is rejected.
//
// Environment variables (read by internal/config):
//
//	REMARKS_FILE=/path/to/remarks.txt
package remarks

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// MinPool is the smallest accepted pool.
const MinPool = 9

// ErrPoolTooSmall is returned when fewer than MinPool remarks are loaded.
var ErrPoolTooSmall = errors.New("remarks: pool too small")

//go:embed remarks.txt
var embedded string

var (
	defaultOnce sync.Once
	defaultPool []string
)

// Default returns a copy of the embedded pool.
func Default() []string {
	defaultOnce.Do(func() {
		defaultPool, _ = parse(strings.NewReader(embedded))
	})
	return append([]string(nil), defaultPool...)
}

// Load returns the pool from path, or the embedded pool when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open remarks: %w", err)
	}
	defer f.Close()

	pool, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(pool) < MinPool {
		return nil, fmt.Errorf("%w: %s has %d, need %d", ErrPoolTooSmall, path, len(pool), MinPool)
	}
	return pool, nil
}

func parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
