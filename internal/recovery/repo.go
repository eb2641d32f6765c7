package recovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/runintel/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSampleNotFound = errors.New("recovery sample not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the sample for its date, overwriting the metrics if a
// sample for that date already exists. Whoop recalculates recovery
// during the day, the latest value wins.
func (r *Repo) Upsert(ctx context.Context, sample Sample) (_ *Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", sample.Date))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO recovery
				(date, recovery_score, hrv, resting_hr)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (date) DO UPDATE SET
				recovery_score = EXCLUDED.recovery_score,
				hrv = EXCLUDED.hrv,
				resting_hr = EXCLUDED.resting_hr
			RETURNING id;`,
		sample.Date, sample.Score, sample.HRV, sample.RestingHR,
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

	sample.ID = id
	return &sample, nil
}

func (r *Repo) GetByDate(ctx context.Context, date string) (_ *Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var sample Sample
	err = r.db.QueryRow(
		ctx,
		`SELECT id, date, recovery_score, hrv, resting_hr FROM recovery WHERE date = $1;`,
		date,
	).Scan(&sample.ID, &sample.Date, &sample.Score, &sample.HRV, &sample.RestingHR)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSampleNotFound
		}
		return nil, err
	}

	return &sample, nil
}

// ListRange returns samples with fromDate <= date <= toDate, ascending by date.
func (r *Repo) ListRange(ctx context.Context, fromDate, toDate string) (_ []Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("fromDate", fromDate),
		attribute.String("toDate", toDate),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, recovery_score, hrv, resting_hr
			FROM recovery
			WHERE date >= $1 AND date <= $2
			ORDER BY date ASC;`,
		fromDate, toDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}

// ListAll returns all samples, ascending by date.
func (r *Repo) ListAll(ctx context.Context) (_ []Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, recovery_score, hrv, resting_hr FROM recovery ORDER BY date ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}

// ExistingDates returns the set of dates which already have a sample stored.
func (r *Repo) ExistingDates(ctx context.Context) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.existingDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT date FROM recovery;`)
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

func scanSamples(rows pgx.Rows) ([]Sample, error) {
	var samples []Sample
	for rows.Next() {
		var sample Sample
		if err := rows.Scan(
			&sample.ID, &sample.Date, &sample.Score, &sample.HRV, &sample.RestingHR,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
