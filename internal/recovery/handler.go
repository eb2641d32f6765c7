package recovery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recovery_test

type samplesRepo interface {
	GetByDate(ctx context.Context, date string) (*Sample, error)
}

// todayFetcher pulls today's recovery from the whoop API and stores it.
type todayFetcher interface {
	FetchToday(ctx context.Context) (*Sample, error)
}

type Handler struct {
	repo    samplesRepo
	fetcher todayFetcher
	now     func() time.Time
}

func NewHandler(repo samplesRepo, fetcher todayFetcher) *Handler {
	return &Handler{
		repo:    repo,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// HandleToday returns today's recovery sample. A stored sample wins,
// otherwise the whoop API is tried, otherwise a sample with empty
// metrics is returned so clients always get a consistent shape.
func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.today")
	defer span.End()

	today := DateOf(handler.now())

	sample, err := handler.repo.GetByDate(ctx, today)
	if err == nil {
		pkg.SendJsonResponse(w, http.StatusOK, sample)
		return
	}
	if !errors.Is(err, ErrSampleNotFound) {
		log.Errorf("get today recovery [%s]: %s", today, err)
		http.Error(w, "error, failed to get recovery", http.StatusInternalServerError)
		return
	}

	fetched, err := handler.fetcher.FetchToday(ctx)
	if err != nil {
		log.Warnf("fetch today recovery from whoop: %s", err)
	}
	if fetched != nil {
		pkg.SendJsonResponse(w, http.StatusOK, fetched)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, Sample{Date: today})
}
