package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// failLine matches one failure-point declaration in failures.conf.
var failLine = regexp.MustCompile(`^FAIL\t(/[\w/]+)`)

// CatalogPath derives the failures.conf location inside an X-Plane install.
func CatalogPath(xplaneDir string) string {
	return filepath.Join(expandHome(xplaneDir),
		"Aircraft", "X-Aviation", "CL650", "plugins", "systems", "data", "failures.conf")
}

// LoadCatalog scrapes the ordered failure-point identifiers from a
// failures.conf file. Only FAIL lines are understood; everything else in
// the file belongs to the simulator and is ignored.
func LoadCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading failure catalog %s: %w", path, err)
	}

	var failures []string
	for _, line := range strings.Split(string(data), "\n") {
		if m := failLine.FindStringSubmatch(line); m != nil {
			failures = append(failures, m[1])
		}
	}
	if len(failures) == 0 {
		return nil, &EmptyCatalogError{Path: path}
	}
	return failures, nil
}

// expandHome resolves a leading ~ in the configured X-Plane directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
