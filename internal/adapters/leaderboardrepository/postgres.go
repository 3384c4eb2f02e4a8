package leaderboardrepository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/reporting"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Postgres struct {
	db     *sqlx.DB
	schema string

	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string) *Postgres {
	tracer := otel.Tracer("wikistats/leaderboardrepository/postgres")

	return &Postgres{
		db:     db,
		schema: schema,

		tracer: tracer,
	}
}

type dbLeaderboardRun struct {
	RunID       string    `db:"run_id"`
	GeneratedAt time.Time `db:"generated_at"`
	RowCount    int       `db:"row_count"`
}

type dbLeaderboardEntry struct {
	RunID      string `db:"run_id"`
	Rank       int    `db:"rank"`
	PlayerUUID string `db:"player_uuid"`
	Name       string `db:"name"`

	PlayTicks       int64 `db:"play_ticks"`
	GamesLeft       int64 `db:"games_left"`
	Jumps           int64 `db:"jumps"`
	Deaths          int64 `db:"deaths"`
	DamageTaken     int64 `db:"damage_taken"`
	DamageDealt     int64 `db:"damage_dealt"`
	MobKills        int64 `db:"mob_kills"`
	PlayerKills     int64 `db:"player_kills"`
	CakeSlicesEaten int64 `db:"cake_slices_eaten"`
	TraveledKM      int64 `db:"traveled_km"`
	Advancements    int   `db:"advancements"`
}

// A stored row of a rendered leaderboard
type Entry struct {
	Rank int

	UUID string
	Name string

	PlayTicks       uint64
	GamesLeft       uint64
	Jumps           uint64
	Deaths          uint64
	DamageTaken     uint64
	DamageDealt     uint64
	MobKills        uint64
	PlayerKills     uint64
	CakeSlicesEaten uint64
	TraveledKM      uint64
	Advancements    int
}

func toDBCounter(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("counter value %d out of range", value)
	}
	return int64(value), nil
}

func toDBEntry(runID string, rank int, record domain.PlayerRecord) (dbLeaderboardEntry, error) {
	values := []uint64{
		record.PlayTicks,
		record.GamesLeft,
		record.Jumps,
		record.Deaths,
		record.DamageTaken,
		record.DamageDealt,
		record.MobKills,
		record.PlayerKills,
		record.CakeSlicesEaten,
		record.TraveledKM,
	}
	converted := make([]int64, len(values))
	for i, value := range values {
		dbValue, err := toDBCounter(value)
		if err != nil {
			return dbLeaderboardEntry{}, fmt.Errorf("player %s: %w", record.UUID, err)
		}
		converted[i] = dbValue
	}

	return dbLeaderboardEntry{
		RunID:      runID,
		Rank:       rank,
		PlayerUUID: record.UUID,
		Name:       record.Name,

		PlayTicks:       converted[0],
		GamesLeft:       converted[1],
		Jumps:           converted[2],
		Deaths:          converted[3],
		DamageTaken:     converted[4],
		DamageDealt:     converted[5],
		MobKills:        converted[6],
		PlayerKills:     converted[7],
		CakeSlicesEaten: converted[8],
		TraveledKM:      converted[9],
		Advancements:    record.Advancements,
	}, nil
}

func (e dbLeaderboardEntry) toEntry() Entry {
	return Entry{
		Rank: e.Rank,

		UUID: e.PlayerUUID,
		Name: e.Name,

		PlayTicks:       uint64(e.PlayTicks),
		GamesLeft:       uint64(e.GamesLeft),
		Jumps:           uint64(e.Jumps),
		Deaths:          uint64(e.Deaths),
		DamageTaken:     uint64(e.DamageTaken),
		DamageDealt:     uint64(e.DamageDealt),
		MobKills:        uint64(e.MobKills),
		PlayerKills:     uint64(e.PlayerKills),
		CakeSlicesEaten: uint64(e.CakeSlicesEaten),
		TraveledKM:      uint64(e.TraveledKM),
		Advancements:    e.Advancements,
	}
}

// Stores the ranked records of one run. Ranks start at 1 in the given order.
func (p *Postgres) StoreLeaderboard(ctx context.Context, runID string, generatedAt time.Time, records []domain.PlayerRecord) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.StoreLeaderboard", trace.WithAttributes(
		attribute.String("runID", runID),
		attribute.Int("rows", len(records)),
	))
	defer span.End()

	entries := make([]dbLeaderboardEntry, 0, len(records))
	for i, record := range records {
		entry, err := toDBEntry(runID, i+1, record)
		if err != nil {
			err := fmt.Errorf("failed to convert record: %w", err)
			reporting.Report(ctx, err, map[string]string{
				"runID": runID,
				"rank":  strconv.Itoa(i + 1),
			})
			return err
		}
		entries = append(entries, entry)
	}

	txx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err)
		return err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"schema": p.schema,
		})
		return err
	}

	_, err = txx.NamedExecContext(
		ctx,
		`INSERT INTO leaderboard_runs
		(run_id, generated_at, row_count)
		VALUES (:run_id, :generated_at, :row_count)`,
		dbLeaderboardRun{
			RunID:       runID,
			GeneratedAt: generatedAt,
			RowCount:    len(entries),
		},
	)
	if err != nil {
		err := fmt.Errorf("failed to insert leaderboard run: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"runID":       runID,
			"generatedAt": generatedAt.Format(time.RFC3339),
		})
		return err
	}

	// sqlx expands the slice into a single multi-row insert, which fails on an empty slice
	if len(entries) > 0 {
		_, err = txx.NamedExecContext(
			ctx,
			`INSERT INTO leaderboard_entries
			(run_id, rank, player_uuid, name,
			play_ticks, games_left, jumps, deaths, damage_taken, damage_dealt,
			mob_kills, player_kills, cake_slices_eaten, traveled_km, advancements)
			VALUES
			(:run_id, :rank, :player_uuid, :name,
			:play_ticks, :games_left, :jumps, :deaths, :damage_taken, :damage_dealt,
			:mob_kills, :player_kills, :cake_slices_eaten, :traveled_km, :advancements)`,
			entries,
		)
		if err != nil {
			err := fmt.Errorf("failed to insert leaderboard entries: %w", err)
			reporting.Report(ctx, err, map[string]string{
				"runID": runID,
				"rows":  strconv.Itoa(len(entries)),
			})
			return err
		}
	}

	err = txx.Commit()
	if err != nil {
		err := fmt.Errorf("failed to commit transaction: %w", err)
		reporting.Report(ctx, err)
		return err
	}

	return nil
}

// Returns the stored rows of a run ordered by rank
func (p *Postgres) GetLeaderboard(ctx context.Context, runID string) ([]Entry, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.GetLeaderboard")
	defer span.End()

	txx, err := p.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		err := fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"schema": p.schema,
		})
		return nil, err
	}

	var dbEntries []dbLeaderboardEntry
	err = txx.SelectContext(
		ctx,
		&dbEntries,
		`SELECT
			run_id, rank, player_uuid, name,
			play_ticks, games_left, jumps, deaths, damage_taken, damage_dealt,
			mob_kills, player_kills, cake_slices_eaten, traveled_km, advancements
		FROM leaderboard_entries
		WHERE run_id = $1
		ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		err := fmt.Errorf("failed to select leaderboard entries: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"runID": runID,
		})
		return nil, err
	}

	entries := make([]Entry, 0, len(dbEntries))
	for _, dbEntry := range dbEntries {
		entries = append(entries, dbEntry.toEntry())
	}

	return entries, nil
}
