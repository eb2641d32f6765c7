package briefing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
	"github.com/2beens/runintel/internal/telemetry/metrics"
	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=briefing_test

const (
	historyWindowDays = 30

	// recovery data can trickle in through the morning after a sync,
	// so the per-day cache entry is kept short lived
	cacheExpireSeconds = 15 * 60
	cacheSizeBytes     = 1024 * 1024
)

type recoverySamplesRepo interface {
	GetByDate(ctx context.Context, date string) (*recovery.Sample, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]recovery.Sample, error)
}

type runHistoryRepo interface {
	ListRange(ctx context.Context, fromDate, toDate string) ([]runs.Run, error)
}

type todayFetcher interface {
	FetchToday(ctx context.Context) (*recovery.Sample, error)
}

type Handler struct {
	recoverySamples recoverySamplesRepo
	runHistory      runHistoryRepo
	fetcher         todayFetcher
	cache           *freecache.Cache
	metricsManager  *metrics.Manager
	now             func() time.Time
}

func NewHandler(
	recoverySamples recoverySamplesRepo,
	runHistory runHistoryRepo,
	fetcher todayFetcher,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		recoverySamples: recoverySamples,
		runHistory:      runHistory,
		fetcher:         fetcher,
		cache:           freecache.NewCache(cacheSizeBytes),
		metricsManager:  metricsManager,
		now:             time.Now,
	}
}

type UnavailableResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (handler *Handler) HandleBriefing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.briefing")
	defer span.End()

	now := handler.now()
	today := recovery.DateOf(now)

	cacheKey := []byte("briefing::" + today)
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("briefing for %s served from cache", today)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	todaySample := handler.todaySample(ctx, today)

	from := recovery.DateOf(now.AddDate(0, 0, -historyWindowDays))
	recoveryHistory, err := handler.recoverySamples.ListRange(ctx, from, today)
	if err != nil {
		log.Errorf("briefing, list recovery history: %s", err)
		http.Error(w, "error, failed to get briefing", http.StatusInternalServerError)
		return
	}
	runHistory, err := handler.runHistory.ListRange(ctx, from, today)
	if err != nil {
		log.Errorf("briefing, list run history: %s", err)
		http.Error(w, "error, failed to get briefing", http.StatusInternalServerError)
		return
	}

	generated := Generate(todaySample, recoveryHistory, runHistory)
	if generated == nil {
		pkg.SendJsonResponse(w, http.StatusOK, UnavailableResponse{
			Status:  "unavailable",
			Message: "No recovery data for today yet. Sync your Whoop and try again.",
		})
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterBriefings.Inc()
	}

	briefingBytes, err := json.Marshal(generated)
	if err != nil {
		log.Errorf("briefing, marshal: %s", err)
		http.Error(w, "error, failed to get briefing", http.StatusInternalServerError)
		return
	}
	if err := handler.cache.Set(cacheKey, briefingBytes, cacheExpireSeconds); err != nil {
		log.Errorf("briefing, cache set: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, briefingBytes)
}

// todaySample prefers the stored row for today, falls back to a live
// fetch, and degrades to an empty sample when both come up short.
func (handler *Handler) todaySample(ctx context.Context, today string) recovery.Sample {
	stored, err := handler.recoverySamples.GetByDate(ctx, today)
	if err == nil {
		return *stored
	}
	if !errors.Is(err, recovery.ErrSampleNotFound) {
		log.Errorf("briefing, get today's stored sample: %s", err)
	}

	fetched, err := handler.fetcher.FetchToday(ctx)
	if err != nil {
		log.Warnf("briefing, fetch today's recovery: %s", err)
		return recovery.Sample{Date: today}
	}
	if fetched == nil {
		return recovery.Sample{Date: today}
	}
	return *fetched
}
