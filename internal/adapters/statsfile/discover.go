package statsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Amund211/wikistats/internal/domain"
)

// <36 character uuid>.json
const STATS_FILE_NAME_LENGTH = 41

// Returns the paths of the per-player stats files in dir, sorted
func ListStatsFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if len(name) != STATS_FILE_NAME_LENGTH {
			continue
		}
		if filepath.Ext(name) != ".json" {
			continue
		}

		paths = append(paths, filepath.Join(dir, name))
	}

	slices.Sort(paths)

	return paths, nil
}

// The player identifier is the file name without its extension
func IdentifierFromPath(path string) (string, error) {
	base := filepath.Base(path)
	stem := base[:len(base)-len(filepath.Ext(base))]
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingIdentifier, path)
	}
	return stem, nil
}
