package runs

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/runintel/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRunNotFound = errors.New("run not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const runColumns = `id, date, distance_miles, time_minutes, pace_per_mile,
	avg_hr, max_hr, strain, whoop_distance_meters,
	zone_zero_milli, zone_one_milli, zone_two_milli,
	zone_three_milli, zone_four_milli, zone_five_milli, shoes`

func (r *Repo) Add(ctx context.Context, run Run) (_ *Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", run.Date))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO runs
				(date, distance_miles, time_minutes, pace_per_mile,
				avg_hr, max_hr, strain, whoop_distance_meters,
				zone_zero_milli, zone_one_milli, zone_two_milli,
				zone_three_milli, zone_four_milli, zone_five_milli, shoes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id;`,
		run.Date, run.DistanceMiles, run.TimeMinutes, run.PacePerMile,
		run.AvgHR, run.MaxHR, run.Strain, run.WhoopDistanceMeters,
		run.ZoneZeroMilli, run.ZoneOneMilli, run.ZoneTwoMilli,
		run.ZoneThreeMilli, run.ZoneFourMilli, run.ZoneFiveMilli, run.Shoes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("run.id", id))

	run.ID = id
	return &run, nil
}

// ListAll returns all runs, newest first.
func (r *Repo) ListAll(ctx context.Context) (_ []Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY date DESC, id DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ListRange returns runs with fromDate <= date <= toDate, ascending by date.
func (r *Repo) ListRange(ctx context.Context, fromDate, toDate string) (_ []Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("fromDate", fromDate),
		attribute.String("toDate", toDate),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+runColumns+` FROM runs
			WHERE date >= $1 AND date <= $2
			ORDER BY date ASC, id ASC;`,
		fromDate, toDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

type ShoeMiles struct {
	Name  string  `json:"name"`
	Miles float64 `json:"miles"`
}

// MilesPerShoe sums logged miles per shoe, most used first.
func (r *Repo) MilesPerShoe(ctx context.Context) (_ []ShoeMiles, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.milesPerShoe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT shoes, SUM(distance_miles) AS miles
			FROM runs
			WHERE shoes IS NOT NULL AND shoes != ''
			GROUP BY shoes
			ORDER BY miles DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shoes []ShoeMiles
	for rows.Next() {
		var shoe ShoeMiles
		if err := rows.Scan(&shoe.Name, &shoe.Miles); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		shoes = append(shoes, shoe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shoes, nil
}

// ExistingDates returns the set of dates which already have a run logged.
func (r *Repo) ExistingDates(ctx context.Context) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.existingDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT date FROM runs;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := map[string]bool{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dates[date] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func scanRuns(rows pgx.Rows) ([]Run, error) {
	var allRuns []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.Date, &run.DistanceMiles, &run.TimeMinutes, &run.PacePerMile,
			&run.AvgHR, &run.MaxHR, &run.Strain, &run.WhoopDistanceMeters,
			&run.ZoneZeroMilli, &run.ZoneOneMilli, &run.ZoneTwoMilli,
			&run.ZoneThreeMilli, &run.ZoneFourMilli, &run.ZoneFiveMilli, &run.Shoes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		allRuns = append(allRuns, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return allRuns, nil
}
