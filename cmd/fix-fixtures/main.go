package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/Amund211/wikistats/internal/adapters/advancements"
	"github.com/Amund211/wikistats/internal/adapters/nameprovider"
	"github.com/Amund211/wikistats/internal/adapters/statsfile"
	"github.com/Amund211/wikistats/internal/app"
	"github.com/Amund211/wikistats/internal/config"
	"github.com/Amund211/wikistats/internal/ports"
)

const serverFixtureDir = "./internal/app/testdata/server/"
const expectedWikiTablePath = "./internal/app/testdata/expected_wikitable.txt"

func renderFixture(ctx context.Context) ([]byte, error) {
	getPlayerRecord, err := app.BuildGetPlayerRecord(
		advancements.NewCounter(config.ADVANCEMENT_CATEGORIES),
		nameprovider.NewPlayerData(path.Join(serverFixtureDir, "playerdata")),
	)
	if err != nil {
		return nil, fmt.Errorf("error building player record builder: %w", err)
	}

	getLeaderboard := app.BuildGetLeaderboard(statsfile.ListStatsFiles, getPlayerRecord, config.DEFAULT_ROW_LIMIT, 1)

	records, err := getLeaderboard(ctx, path.Join(serverFixtureDir, "stats"))
	if err != nil {
		return nil, fmt.Errorf("error building leaderboard: %w", err)
	}

	var buf bytes.Buffer
	err = ports.RenderWikiTable(&buf, records, config.TOTAL_ADVANCEMENTS)
	if err != nil {
		return nil, fmt.Errorf("error rendering wiki table: %w", err)
	}

	return buf.Bytes(), nil
}

func writeIfChanged(data []byte, filePath string) error {
	expectedBytes, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist -> create it
			expectedBytes = nil
		} else {
			return fmt.Errorf("error reading from %s: %w", filePath, err)
		}
	}

	if bytes.Equal(data, expectedBytes) {
		return nil
	}

	log.Printf("Updating fixture %s", filePath)
	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing to %s: %w", filePath, err)
	}

	return nil
}

func main() {
	table, err := renderFixture(context.Background())
	if err != nil {
		log.Fatalf("Error rendering fixture: %v", err)
	}

	err = writeIfChanged(table, expectedWikiTablePath)
	if err != nil {
		log.Fatalf("Error writing fixture: %v", err)
	}
}
