package nameprovider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

// Reads the last known name from the gzip'd NBT player data written by the server
type PlayerData struct {
	dir string
}

func NewPlayerData(playerDataDir string) *PlayerData {
	return &PlayerData{dir: playerDataDir}
}

type playerDataFile struct {
	Bukkit map[string]any `nbt:"bukkit"`
}

func (p *PlayerData) GetName(ctx context.Context, uuid string) (string, error) {
	path := filepath.Join(p.dir, fmt.Sprintf("%s.dat", uuid))

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: no player data file %s", domain.ErrNameNotFound, path)
	} else if err != nil {
		return "", fmt.Errorf("failed to open player data file %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to decompress player data file %s: %w", path, err)
	}
	defer gz.Close()

	var data playerDataFile
	if _, err := nbt.NewDecoder(gz).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode player data file %s: %w", path, err)
	}

	if data.Bukkit == nil {
		return "", fmt.Errorf("%w: could not find bukkit compound in %s", domain.ErrNameNotFound, path)
	}

	rawName, ok := data.Bukkit["lastKnownName"]
	if !ok {
		return "", fmt.Errorf("%w: lastKnownName not found in %s", domain.ErrNameNotFound, path)
	}

	name, ok := rawName.(string)
	if !ok {
		return "", fmt.Errorf("lastKnownName had invalid type %T in %s", rawName, path)
	}
	if name == "" {
		return "", fmt.Errorf("%w: lastKnownName is empty in %s", domain.ErrNameNotFound, path)
	}

	return name, nil
}
