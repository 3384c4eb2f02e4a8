package advancements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/logging"
)

type Counter struct {
	prefixes []string
}

// Only advancements in the given categories (e.g. "story") are counted
func NewCounter(categories []string) *Counter {
	prefixes := make([]string, len(categories))
	for i, category := range categories {
		prefixes[i] = fmt.Sprintf("minecraft:%s/", category)
	}
	return &Counter{prefixes: prefixes}
}

// Given <world>/stats/<uuid>.json, returns <world>/advancements/<uuid>.json
func AdvancementsPath(statsPath string, uuid string) string {
	worldDir := filepath.Dir(filepath.Dir(statsPath))
	return filepath.Join(worldDir, "advancements", fmt.Sprintf("%s.json", uuid))
}

// Count the completed advancements in the file at path.
//
// A missing file is not an error: players that have not logged in since advancements
// were added to the game don't have one.
func (c *Counter) Count(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.FromContext(ctx).DebugContext(ctx, "No advancements file", "path", path)
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to read advancements file %s: %w", path, err)
	}

	count, err := c.CountCompleted(data)
	if err != nil {
		return 0, fmt.Errorf("failed to count advancements in %s: %w", path, err)
	}

	return count, nil
}

func (c *Counter) hasCountedCategory(name string) bool {
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// The file maps advancement names to a detail object with a boolean "done" field
func (c *Counter) CountCompleted(data []byte) (int, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrMalformedAdvancements, err)
	}
	if entries == nil {
		return 0, fmt.Errorf("%w: top level is not an object", domain.ErrMalformedAdvancements)
	}

	count := 0
	for name, rawDetails := range entries {
		if !c.hasCountedCategory(name) {
			continue
		}

		// Anything that isn't {"done": true} contributes nothing
		var details map[string]json.RawMessage
		if err := json.Unmarshal(rawDetails, &details); err != nil {
			continue
		}
		rawDone, ok := details["done"]
		if !ok {
			continue
		}
		var done bool
		if err := json.Unmarshal(rawDone, &done); err != nil {
			continue
		}

		if done {
			count++
		}
	}

	return count, nil
}
