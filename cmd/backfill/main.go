package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/2beens/runintel/internal/config"
	"github.com/2beens/runintel/internal/db"
	"github.com/2beens/runintel/internal/logging"
	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
	"github.com/2beens/runintel/internal/whoop"

	log "github.com/sirupsen/logrus"
)

const metersPerMile = 1609.34

// backfill pulls the whoop workout and recovery history and stores it,
// skipping dates that are already present. The whoop token must already
// be in the db, i.e. the oauth dance via the service must have happened.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	from := flag.String("from", "", "backfill start date, YYYY-MM-DD")
	to := flag.String("to", "", "backfill end date, YYYY-MM-DD (default today)")
	dryRun := flag.Bool("dry-run", false, "fetch and convert, but do not store anything")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	whoopClientID := os.Getenv("RUNINTEL_WHOOP_CLIENT_ID")
	whoopClientSecret := os.Getenv("RUNINTEL_WHOOP_CLIENT_SECRET")
	if whoopClientID == "" || whoopClientSecret == "" {
		log.Fatalln("whoop credentials not set, use RUNINTEL_WHOOP_CLIENT_ID and RUNINTEL_WHOOP_CLIENT_SECRET")
	}

	startDate, err := time.Parse(runs.DateLayout, *from)
	if err != nil {
		log.Fatalf("invalid -from date [%s]: %s", *from, err)
	}
	endDate := time.Now()
	if *to != "" {
		endDate, err = time.Parse(runs.DateLayout, *to)
		if err != nil {
			log.Fatalf("invalid -to date [%s]: %s", *to, err)
		}
		// include the whole end day
		endDate = endDate.AddDate(0, 0, 1)
	}

	ctx := context.Background()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("RUNINTEL_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	oauthConfig := whoop.NewOAuthConfig(whoopClientID, whoopClientSecret, cfg.WhoopRedirectURI)
	tokens := whoop.NewTokenSource(oauthConfig, whoop.NewTokenRepo(dbPool), nil)
	client := whoop.NewClient(whoop.BaseURL, &http.Client{Timeout: time.Minute}, tokens)

	runsRepo := runs.NewRepo(dbPool)
	recoveryRepo := recovery.NewRepo(dbPool)

	addedRuns, err := backfillRuns(ctx, client, runsRepo, startDate, endDate, *dryRun)
	if err != nil {
		log.Fatalf("backfill runs: %s", err)
	}
	addedRecoveries, err := backfillRecoveries(ctx, client, recoveryRepo, startDate, endDate, *dryRun)
	if err != nil {
		log.Fatalf("backfill recoveries: %s", err)
	}

	log.Printf("done: %d runs and %d recovery samples added", addedRuns, addedRecoveries)
}

type runStore interface {
	Add(ctx context.Context, run runs.Run) (*runs.Run, error)
	ExistingDates(ctx context.Context) (map[string]bool, error)
}

func backfillRuns(
	ctx context.Context,
	client *whoop.Client,
	repo runStore,
	start, end time.Time,
	dryRun bool,
) (int, error) {
	existing, err := repo.ExistingDates(ctx)
	if err != nil {
		return 0, fmt.Errorf("get existing run dates: %w", err)
	}

	workouts, err := client.Workouts(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("fetch workouts: %w", err)
	}
	log.Printf("fetched %d workouts", len(workouts))

	added := 0
	for _, workout := range workouts {
		if !strings.EqualFold(workout.SportName, "running") {
			continue
		}

		date := runs.DateOf(workout.Start)
		if existing[date] {
			log.Tracef("run for %s already stored, skipping", date)
			continue
		}

		run := workoutToRun(workout)
		if dryRun {
			log.Printf("[dry run] would add run: %s, %.2f mi in %.1f min (%s/mi)",
				run.Date, run.DistanceMiles, run.TimeMinutes, run.PacePerMile)
			added++
			continue
		}

		if _, err := repo.Add(ctx, run); err != nil {
			return added, fmt.Errorf("add run for %s: %w", date, err)
		}
		existing[date] = true
		added++
	}

	return added, nil
}

func workoutToRun(workout whoop.Workout) runs.Run {
	minutes := math.Round(workout.End.Sub(workout.Start).Minutes()*10) / 10

	var distanceMiles float64
	run := runs.Run{
		Date:        runs.DateOf(workout.Start),
		TimeMinutes: minutes,
	}

	if workout.Score != nil {
		score := workout.Score
		if score.DistanceMeter != nil {
			distanceMiles = math.Round(*score.DistanceMeter/metersPerMile*100) / 100
		}
		run.AvgHR = score.AverageHeartRate
		run.MaxHR = score.MaxHeartRate
		run.Strain = score.Strain
		run.WhoopDistanceMeters = score.DistanceMeter
		run.ZoneZeroMilli = score.ZoneDurations.ZoneZeroMilli
		run.ZoneOneMilli = score.ZoneDurations.ZoneOneMilli
		run.ZoneTwoMilli = score.ZoneDurations.ZoneTwoMilli
		run.ZoneThreeMilli = score.ZoneDurations.ZoneThreeMilli
		run.ZoneFourMilli = score.ZoneDurations.ZoneFourMilli
		run.ZoneFiveMilli = score.ZoneDurations.ZoneFiveMilli
	}

	run.DistanceMiles = distanceMiles
	run.PacePerMile = runs.FormatPace(minutes, distanceMiles)

	return run
}

type recoveryStore interface {
	Upsert(ctx context.Context, sample recovery.Sample) (*recovery.Sample, error)
	ExistingDates(ctx context.Context) (map[string]bool, error)
}

func backfillRecoveries(
	ctx context.Context,
	client *whoop.Client,
	repo recoveryStore,
	start, end time.Time,
	dryRun bool,
) (int, error) {
	existing, err := repo.ExistingDates(ctx)
	if err != nil {
		return 0, fmt.Errorf("get existing recovery dates: %w", err)
	}

	records, err := client.Recoveries(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("fetch recoveries: %w", err)
	}
	log.Printf("fetched %d recovery records", len(records))

	added := 0
	for _, record := range records {
		date := recovery.DateOf(record.CreatedAt)
		if existing[date] {
			log.Tracef("recovery for %s already stored, skipping", date)
			continue
		}
		if record.Score == nil {
			log.Tracef("recovery for %s has no score, skipping", date)
			continue
		}

		sample := recovery.Sample{
			Date:      date,
			Score:     record.Score.RecoveryScore,
			HRV:       record.Score.HRVRmssdMilli,
			RestingHR: record.Score.RestingHeartRate,
		}

		if dryRun {
			log.Printf("[dry run] would add recovery sample for %s", date)
			added++
			continue
		}

		if _, err := repo.Upsert(ctx, sample); err != nil {
			return added, fmt.Errorf("upsert recovery for %s: %w", date, err)
		}
		existing[date] = true
		added++
	}

	return added, nil
}
