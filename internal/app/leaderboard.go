package app

import (
	"context"
	"fmt"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/logging"
	"golang.org/x/sync/errgroup"
)

type GetLeaderboard func(ctx context.Context, statsDir string) ([]domain.PlayerRecord, error)

type ListStatsFiles func(dir string) ([]string, error)

func BuildGetLeaderboard(
	listStatsFiles ListStatsFiles,
	getPlayerRecord GetPlayerRecord,
	rowLimit int,
	concurrency int,
) GetLeaderboard {
	return func(ctx context.Context, statsDir string) ([]domain.PlayerRecord, error) {
		logger := logging.FromContext(ctx)

		paths, err := listStatsFiles(statsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to list stats files: %w", err)
		}

		logger.InfoContext(ctx, "Building player records", "files", len(paths), "concurrency", concurrency)

		records := make([]domain.PlayerRecord, len(paths))

		g, gctx := errgroup.WithContext(ctx)
		if concurrency > 0 {
			g.SetLimit(concurrency)
		}
		for i, path := range paths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				record, err := getPlayerRecord(gctx, path)
				if err != nil {
					return err
				}
				records[i] = record
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("failed to build player records: %w", err)
		}

		top := domain.SelectTop(domain.RankPlayerRecords(records), rowLimit)

		logger.InfoContext(ctx, "Built leaderboard", "players", len(records), "rows", len(top))

		return top, nil
	}
}
