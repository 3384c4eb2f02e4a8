package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/Amund211/wikistats/internal/adapters/advancements"
	"github.com/Amund211/wikistats/internal/adapters/nameprovider"
	"github.com/Amund211/wikistats/internal/app"
	"github.com/Amund211/wikistats/internal/config"
	"github.com/Amund211/wikistats/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("No stats file provided")
	}

	statsPath := os.Args[1]

	if statsPath == "" {
		log.Fatal("No stats file provided")
	}

	// <serverDir>/stats/<uuid>.json
	serverDir := filepath.Dir(filepath.Dir(statsPath))

	getPlayerRecord, err := app.BuildGetPlayerRecord(
		advancements.NewCounter(config.ADVANCEMENT_CATEGORIES),
		nameprovider.NewPlayerData(filepath.Join(serverDir, "playerdata")),
	)
	if err != nil {
		log.Fatalf("Failed building player record builder: %v", err)
	}

	ctx := logging.AddToContext(context.Background(), logging.NewJSONLogger(os.Stderr, "inspect-player"))

	record, err := getPlayerRecord(ctx, statsPath)
	if err != nil {
		log.Fatalf("Failed building player record: %v", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Failed marshalling player record: %v", err)
	}

	os.Stdout.Write(append(data, '\n'))
}
