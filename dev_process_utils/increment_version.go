// dev_process_utils/increment_version.go bumps the patch number of the
// gasorganizer Version constant. Run it from the repository root before tagging.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	pflag "github.com/spf13/pflag"
)

// Matches: const Version = "major.minor.patch"
var versionLineRe = regexp.MustCompile(`^(const Version\s*=\s*")(\d+\.\d+\.)(\d+)(".*)$`)

// bumpPatch returns content with the patch component of the first Version
// constant incremented, plus the old and new version strings.
func bumpPatch(content string) (updated, oldVersion, newVersion string, err error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		m := versionLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		patch, convErr := strconv.Atoi(m[3])
		if convErr != nil {
			return "", "", "", errors.Wrapf(convErr, "invalid patch number %q", m[3])
		}
		oldVersion = m[2] + m[3]
		newVersion = m[2] + strconv.Itoa(patch+1)
		lines[i] = m[1] + newVersion + m[4]
		return strings.Join(lines, "\n"), oldVersion, newVersion, nil
	}
	return "", "", "", errors.New("Version constant not found")
}

func updateVersionInFile(versionFile string) error {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return errors.Wrapf(err, "reading %s", versionFile)
	}
	updated, oldVersion, newVersion, err := bumpPatch(string(content))
	if err != nil {
		return errors.Wrapf(err, "updating %s", versionFile)
	}
	if err := os.WriteFile(versionFile, []byte(updated), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", versionFile)
	}
	slog.Info("Version updated.", "file", versionFile, "from", oldVersion, "to", newVersion)
	return nil
}

func main() {
	versionFile := pflag.StringP("file", "f", "cmd/gasorganizer/main.go", "Go file holding the Version constant.")
	pflag.Parse()

	if err := updateVersionInFile(*versionFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
