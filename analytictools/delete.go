// analytictools/delete.go
package analytictools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DeleteDirectories asks once on out for permission to remove paths, reading
// the answer from in, and removes each one (directories recursively) when the
// answer is "y" or "yes". assumeYes skips the prompt. It returns the removed paths.
func DeleteDirectories(paths []any, in io.Reader, out io.Writer, assumeYes bool) ([]string, error) {
	targets := make([]Path, 0, len(paths))
	for _, v := range paths {
		p, err := asPath(v)
		if err != nil {
			return nil, err
		}
		targets = append(targets, p)
	}
	if len(targets) == 0 {
		return nil, nil
	}

	if !assumeYes {
		if err := writePrompt(out, targets); err != nil {
			return nil, errors.Wrap(err, "writing confirmation prompt")
		}

		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading confirmation")
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			return nil, nil
		}
	}

	removed := make([]string, 0, len(targets))
	for _, p := range targets {
		if err := os.RemoveAll(string(p)); err != nil {
			return removed, errors.Wrapf(err, "removing %s", p)
		}
		removed = append(removed, string(p))
	}
	return removed, nil
}

// writePrompt lists targets on out and asks for confirmation.
func writePrompt(out io.Writer, targets []Path) error {
	if _, err := fmt.Fprintf(out, "Delete %d path(s)?\n", len(targets)); err != nil {
		return err
	}
	for _, p := range targets {
		if _, err := fmt.Fprintf(out, "- %s\n", p); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(out, "[y/N]: ")
	return err
}
