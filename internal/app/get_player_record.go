package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Amund211/wikistats/internal/adapters/advancements"
	"github.com/Amund211/wikistats/internal/adapters/statsfile"
	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type GetPlayerRecord func(ctx context.Context, statsPath string) (domain.PlayerRecord, error)

type advancementCounter interface {
	Count(ctx context.Context, path string) (int, error)
}

type nameProvider interface {
	GetName(ctx context.Context, uuid string) (string, error)
}

type recordMetricsCollection struct {
	recordsBuilt  metric.Int64Counter
	nameFallbacks metric.Int64Counter
}

func setupRecordMetrics(meter metric.Meter) (recordMetricsCollection, error) {
	recordsBuilt, err := meter.Int64Counter(
		"app/records_built",
		metric.WithDescription("Number of player records built from stats files"),
	)
	if err != nil {
		return recordMetricsCollection{}, fmt.Errorf("failed to create records built metric: %w", err)
	}

	nameFallbacks, err := meter.Int64Counter(
		"app/name_fallbacks",
		metric.WithDescription("Number of player records using the uuid as display name"),
	)
	if err != nil {
		return recordMetricsCollection{}, fmt.Errorf("failed to create name fallbacks metric: %w", err)
	}

	return recordMetricsCollection{
		recordsBuilt:  recordsBuilt,
		nameFallbacks: nameFallbacks,
	}, nil
}

func BuildGetPlayerRecord(counter advancementCounter, names nameProvider) (GetPlayerRecord, error) {
	const name = "wikistats/app/player_record"

	tracer := otel.Tracer(name)
	metrics, err := setupRecordMetrics(otel.Meter(name))
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return func(ctx context.Context, statsPath string) (domain.PlayerRecord, error) {
		ctx, span := tracer.Start(ctx, "GetPlayerRecord", trace.WithAttributes(attribute.String("path", statsPath)))
		defer span.End()

		uuid, err := statsfile.IdentifierFromPath(statsPath)
		if err != nil {
			return domain.PlayerRecord{}, fmt.Errorf("could not get identifier from %s: %w", statsPath, err)
		}

		ctx = logging.AddMetaToContext(ctx, slog.String("uuid", uuid))

		data, err := os.ReadFile(statsPath)
		if err != nil {
			return domain.PlayerRecord{}, fmt.Errorf("failed to read stats file %s (uuid %s): %w", statsPath, uuid, err)
		}

		counters, err := statsfile.ParseCounters(data)
		if err != nil {
			return domain.PlayerRecord{}, fmt.Errorf("failed to parse stats file %s (uuid %s): %w", statsPath, uuid, err)
		}

		completed, err := counter.Count(ctx, advancements.AdvancementsPath(statsPath, uuid))
		if err != nil {
			return domain.PlayerRecord{}, fmt.Errorf("failed to count advancements for %s (uuid %s): %w", statsPath, uuid, err)
		}

		displayName, err := names.GetName(ctx, uuid)
		if err != nil {
			reason := "unexpected"
			if errors.Is(err, domain.ErrNameNotFound) {
				reason = "not_found"
			}
			logging.FromContext(ctx).WarnContext(
				ctx,
				"Could not resolve player name, using uuid",
				"error", err.Error(),
				"reason", reason,
			)
			metrics.nameFallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
			displayName = uuid
		}

		metrics.recordsBuilt.Add(ctx, 1)

		return domain.NewPlayerRecord(uuid, displayName, counters, completed), nil
	}, nil
}
