// cmd/gasorganizer/helpers.go
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// processPatterns splits comma-joined pattern lists and drops blanks and duplicates.
func processPatterns(patternList []string) []string {
	processed := make([]string, 0, len(patternList))
	for _, entry := range patternList {
		for _, part := range strings.Split(entry, ",") {
			cleaned := strings.TrimSpace(part)
			if cleaned == "" {
				continue
			}
			processed = append(processed, cleaned)
		}
	}
	return lo.Uniq(processed)
}

// mapsKeys returns the keys of m in sorted order.
func mapsKeys[M ~map[K]V, K comparable, V any](m M) []K {
	r := lo.Keys(m)
	sort.Slice(r, func(i, j int) bool {
		return fmt.Sprint(r[i]) < fmt.Sprint(r[j])
	})
	return r
}

func tern[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// copyFile copies src to dst, replacing dst if present, and returns the bytes written.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, errCopy := io.Copy(out, in)
	errClose := out.Close()
	if errCopy != nil {
		return n, errCopy
	}
	return n, errClose
}
