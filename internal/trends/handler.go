package trends

import (
	"context"
	"net/http"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trends_test

type runsRepo interface {
	ListAll(ctx context.Context) ([]runs.Run, error)
}

type recoveryRepo interface {
	ListAll(ctx context.Context) ([]recovery.Sample, error)
}

type Handler struct {
	runs     runsRepo
	recovery recoveryRepo
}

func NewHandler(runsRepo runsRepo, recoveryRepo recoveryRepo) *Handler {
	return &Handler{
		runs:     runsRepo,
		recovery: recoveryRepo,
	}
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.report")
	defer span.End()

	allRuns, recoveryHistory, err := handler.loadHistory(ctx)
	if err != nil {
		log.Errorf("trends report: %s", err)
		http.Error(w, "error, failed to build trends report", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, BuildReport(allRuns, recoveryHistory))
}

func (handler *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.snapshot")
	defer span.End()

	allRuns, recoveryHistory, err := handler.loadHistory(ctx)
	if err != nil {
		log.Errorf("stats snapshot: %s", err)
		http.Error(w, "error, failed to build snapshot", http.StatusInternalServerError)
		return
	}

	snapshot := BuildSnapshot(allRuns, recoveryHistory)
	if snapshot == nil {
		snapshot = []SnapshotMetric{}
	}
	pkg.SendJsonResponse(w, http.StatusOK, snapshot)
}

// loadHistory returns runs and recovery samples, both ascending by
// date.
func (handler *Handler) loadHistory(ctx context.Context) ([]runs.Run, []recovery.Sample, error) {
	allRuns, err := handler.runs.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	// runs come newest first, the analyzer wants them ascending
	for i, j := 0, len(allRuns)-1; i < j; i, j = i+1, j-1 {
		allRuns[i], allRuns[j] = allRuns[j], allRuns[i]
	}

	recoveryHistory, err := handler.recovery.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return allRuns, recoveryHistory, nil
}
