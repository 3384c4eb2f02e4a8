package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Amund211/wikistats/internal/adapters/advancements"
	"github.com/Amund211/wikistats/internal/adapters/nameprovider"
	"github.com/Amund211/wikistats/internal/adapters/statsfile"
	"github.com/Amund211/wikistats/internal/app"
	"github.com/Amund211/wikistats/internal/config"
	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listPaths(paths ...string) app.ListStatsFiles {
	return func(dir string) ([]string, error) {
		return paths, nil
	}
}

func playTicksStats(playTicks int) string {
	return fmt.Sprintf(`{"stats": {"minecraft:custom": {"minecraft:play_one_minute": %d}}}`, playTicks)
}

func TestGetLeaderboard(t *testing.T) {
	t.Parallel()

	newThreePlayerServer := func(t *testing.T) []string {
		t.Helper()

		serverDir := t.TempDir()
		return []string{
			writePlayerFiles(t, serverDir, "bbb", playTicksStats(100), nil),
			writePlayerFiles(t, serverDir, "aaa", playTicksStats(100), nil),
			writePlayerFiles(t, serverDir, "ccc", playTicksStats(50), nil),
		}
	}

	uuidsOf := func(records []domain.PlayerRecord) []string {
		uuids := make([]string, 0, len(records))
		for _, record := range records {
			uuids = append(uuids, record.UUID)
		}
		return uuids
	}

	t.Run("ties broken by uuid", func(t *testing.T) {
		t.Parallel()

		paths := newThreePlayerServer(t)
		getLeaderboard := app.BuildGetLeaderboard(listPaths(paths...), newGetPlayerRecord(t, &mockNameProvider{}), 300, 2)

		records, err := getLeaderboard(t.Context(), "stats")
		require.NoError(t, err)
		require.Equal(t, []string{"aaa", "bbb", "ccc"}, uuidsOf(records))
		require.Equal(t, uint64(100), records[0].PlayTicks)
		require.Equal(t, uint64(100), records[1].PlayTicks)
		require.Equal(t, uint64(50), records[2].PlayTicks)
	})

	t.Run("row limit", func(t *testing.T) {
		t.Parallel()

		paths := newThreePlayerServer(t)

		for _, tc := range []struct {
			rowLimit int
			expected []string
		}{
			{rowLimit: 0, expected: []string{}},
			{rowLimit: 1, expected: []string{"aaa"}},
			{rowLimit: 2, expected: []string{"aaa", "bbb"}},
			{rowLimit: 3, expected: []string{"aaa", "bbb", "ccc"}},
			{rowLimit: 300, expected: []string{"aaa", "bbb", "ccc"}},
		} {
			t.Run(fmt.Sprintf("limit %d", tc.rowLimit), func(t *testing.T) {
				t.Parallel()

				getLeaderboard := app.BuildGetLeaderboard(listPaths(paths...), newGetPlayerRecord(t, &mockNameProvider{}), tc.rowLimit, 4)

				records, err := getLeaderboard(t.Context(), "stats")
				require.NoError(t, err)
				require.Equal(t, tc.expected, uuidsOf(records))
			})
		}
	})

	t.Run("independent of concurrency", func(t *testing.T) {
		t.Parallel()

		serverDir := t.TempDir()
		paths := make([]string, 0, 50)
		for i := range 50 {
			uuid := fmt.Sprintf("player-%02d", i)
			paths = append(paths, writePlayerFiles(t, serverDir, uuid, playTicksStats((i*7)%10), nil))
		}

		var expected []domain.PlayerRecord
		for _, concurrency := range []int{1, 2, 8, 64} {
			getLeaderboard := app.BuildGetLeaderboard(listPaths(paths...), newGetPlayerRecord(t, &mockNameProvider{}), 300, concurrency)

			records, err := getLeaderboard(t.Context(), "stats")
			require.NoError(t, err)
			require.Len(t, records, 50)

			if expected == nil {
				expected = records
				continue
			}
			require.Equal(t, expected, records)
		}
	})

	t.Run("malformed file fails the run", func(t *testing.T) {
		t.Parallel()

		serverDir := t.TempDir()
		paths := []string{
			writePlayerFiles(t, serverDir, "aaa", playTicksStats(100), nil),
			writePlayerFiles(t, serverDir, "bbb", `{"stats": {"minecraft:custom": {"minecraft:jump": -1}}}`, nil),
			writePlayerFiles(t, serverDir, "ccc", playTicksStats(50), nil),
		}
		getLeaderboard := app.BuildGetLeaderboard(listPaths(paths...), newGetPlayerRecord(t, &mockNameProvider{}), 300, 1)

		records, err := getLeaderboard(t.Context(), "stats")
		require.ErrorIs(t, err, domain.ErrMalformedStats)
		require.ErrorContains(t, err, "bbb")
		require.Nil(t, records)
	})

	t.Run("listing failure", func(t *testing.T) {
		t.Parallel()

		list := func(dir string) ([]string, error) {
			return nil, assert.AnError
		}
		getPlayerRecord := func(ctx context.Context, statsPath string) (domain.PlayerRecord, error) {
			t.Fatal("should not build records")
			return domain.PlayerRecord{}, nil
		}
		getLeaderboard := app.BuildGetLeaderboard(list, getPlayerRecord, 300, 1)

		_, err := getLeaderboard(t.Context(), "stats")
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("missing stats directory", func(t *testing.T) {
		t.Parallel()

		getLeaderboard := app.BuildGetLeaderboard(statsfile.ListStatsFiles, newGetPlayerRecord(t, &mockNameProvider{}), 300, 1)

		_, err := getLeaderboard(t.Context(), filepath.Join(t.TempDir(), "stats"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWikiTableFixture(t *testing.T) {
	t.Parallel()

	serverDir := filepath.Join("testdata", "server")
	expected, err := os.ReadFile(filepath.Join("testdata", "expected_wikitable.txt"))
	require.NoError(t, err)

	getPlayerRecord, err := app.BuildGetPlayerRecord(
		advancements.NewCounter(config.ADVANCEMENT_CATEGORIES),
		nameprovider.NewPlayerData(filepath.Join(serverDir, "playerdata")),
	)
	require.NoError(t, err)

	getLeaderboard := app.BuildGetLeaderboard(statsfile.ListStatsFiles, getPlayerRecord, config.DEFAULT_ROW_LIMIT, 4)

	render := func() []byte {
		records, err := getLeaderboard(t.Context(), filepath.Join(serverDir, "stats"))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, ports.RenderWikiTable(&buf, records, config.TOTAL_ADVANCEMENTS))
		return buf.Bytes()
	}

	first := render()
	require.Equal(t, string(expected), string(first))

	// Unchanged input renders byte for byte the same
	require.Equal(t, first, render())
}
