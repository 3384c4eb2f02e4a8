package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/Amund211/wikistats/internal/adapters/advancements"
	"github.com/Amund211/wikistats/internal/adapters/database"
	"github.com/Amund211/wikistats/internal/adapters/leaderboardrepository"
	"github.com/Amund211/wikistats/internal/adapters/nameprovider"
	"github.com/Amund211/wikistats/internal/adapters/statsfile"
	"github.com/Amund211/wikistats/internal/app"
	"github.com/Amund211/wikistats/internal/config"
	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/logging"
	"github.com/Amund211/wikistats/internal/ports"
	"github.com/Amund211/wikistats/internal/reporting"
	"github.com/Amund211/wikistats/internal/telemetry"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// The session server allows roughly 200 profile lookups per minute
const MOJANG_REQUESTS_PER_SECOND = 3

func main() {
	runID := uuid.New().String()
	startedAt := time.Now()
	logger := logging.NewJSONLogger(os.Stderr, runID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.AddToContext(ctx, logger)
	ctx = reporting.NewRunContext(ctx, runID, startedAt)
	ctx = reporting.AddExtrasToContext(ctx, map[string]string{
		"serverDir": conf.ServerDir(),
	})

	err = run(ctx, conf, runID, startedAt)
	stop()
	if err != nil {
		fail("Failed to generate leaderboard", "error", err.Error())
	}

	logger.Info("Done", "seconds", time.Since(startedAt).Seconds())
}

func run(ctx context.Context, conf config.Config, runID string, startedAt time.Time) error {
	logger := logging.FromContext(ctx)

	flush, err := reporting.NewSentryOrMock(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}
	defer flush()
	logger.InfoContext(ctx, "Initialized Sentry")

	if conf.OTLPEndpoint() != "" {
		shutdown, err := telemetry.SetupOTelSDK(ctx, conf.OTLPEndpoint(), runID)
		if err != nil {
			return fmt.Errorf("failed to set up OpenTelemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.WarnContext(ctx, "Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.InfoContext(ctx, "Initialized OpenTelemetry")
	}

	err = generate(ctx, conf, runID, startedAt)
	if err != nil {
		reporting.Report(ctx, err)
		return err
	}
	return nil
}

func newNameProvider(conf config.Config) nameprovider.NameProvider {
	providers := []nameprovider.NameProvider{
		nameprovider.NewPlayerData(filepath.Join(conf.ServerDir(), "playerdata")),
	}

	if conf.MojangFallback() {
		httpClient := &http.Client{
			Timeout: 10 * time.Second,
		}
		limiter := rate.NewLimiter(rate.Limit(MOJANG_REQUESTS_PER_SECOND), 1)
		providers = append(providers, nameprovider.NewMojang(httpClient, limiter))
	}

	return nameprovider.NewChain(providers...)
}

func generate(ctx context.Context, conf config.Config, runID string, startedAt time.Time) error {
	logger := logging.FromContext(ctx)

	getPlayerRecord, err := app.BuildGetPlayerRecord(
		advancements.NewCounter(conf.AdvancementCategories()),
		newNameProvider(conf),
	)
	if err != nil {
		return fmt.Errorf("failed to build player record builder: %w", err)
	}

	getLeaderboard := app.BuildGetLeaderboard(
		statsfile.ListStatsFiles,
		getPlayerRecord,
		conf.RowLimit(),
		runtime.GOMAXPROCS(0),
	)

	records, err := getLeaderboard(ctx, filepath.Join(conf.ServerDir(), "stats"))
	if err != nil {
		return err
	}

	if conf.DatabaseURL() != "" {
		if err := archive(ctx, conf, runID, startedAt, records); err != nil {
			return fmt.Errorf("failed to archive leaderboard: %w", err)
		}
	}

	// Render fully before writing so a failure never leaves a partial table on stdout
	var buf bytes.Buffer
	if err := ports.RenderWikiTable(&buf, records, conf.TotalAdvancements()); err != nil {
		return err
	}
	if _, err := buf.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("failed to write table to stdout: %w", err)
	}

	logger.InfoContext(ctx, "Wrote leaderboard", "rows", len(records))
	return nil
}

func archive(ctx context.Context, conf config.Config, runID string, generatedAt time.Time, records []domain.PlayerRecord) error {
	logger := logging.FromContext(ctx)

	logger.InfoContext(ctx, "Initializing database connection")
	db, err := database.NewPostgresDatabase(conf.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	err = database.NewDatabaseMigrator(db, logger.With(slog.String("component", "migrator"))).Migrate(ctx, database.MAIN_SCHEMA)
	if err != nil {
		return err
	}

	repo := leaderboardrepository.NewPostgres(db, database.MAIN_SCHEMA)
	if err := repo.StoreLeaderboard(ctx, runID, generatedAt, records); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Archived leaderboard", "rows", len(records))
	return nil
}
