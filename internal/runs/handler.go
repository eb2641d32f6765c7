package runs

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/telemetry/metrics"
	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/internal/whoop"
	"github.com/2beens/runintel/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=runs_test

type runsRepo interface {
	Add(ctx context.Context, run Run) (*Run, error)
	ListAll(ctx context.Context) ([]Run, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]Run, error)
	MilesPerShoe(ctx context.Context) ([]ShoeMiles, error)
}

type workoutsFetcher interface {
	Workouts(ctx context.Context, start, end time.Time) ([]whoop.Workout, error)
}

// recoverySource provides today's recovery sample for the coaching insight.
type recoverySource interface {
	FetchToday(ctx context.Context) (*recovery.Sample, error)
}

type Handler struct {
	repo           runsRepo
	whoopClient    workoutsFetcher
	recovery       recoverySource
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(
	repo runsRepo,
	whoopClient workoutsFetcher,
	recoverySrc recoverySource,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		whoopClient:    whoopClient,
		recovery:       recoverySrc,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

type AddRunRequest struct {
	DistanceMiles float64 `json:"distance_miles"`
	TimeMinutes   float64 `json:"time_minutes"`
	Shoe          string  `json:"shoe"`
}

type AddRunResponse struct {
	Run             Run    `json:"run"`
	CoachingInsight string `json:"coaching_insight"`
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.list")
	defer span.End()

	allRuns, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list runs: %s", err)
		http.Error(w, "error, failed to list runs", http.StatusInternalServerError)
		return
	}
	if allRuns == nil {
		allRuns = []Run{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, allRuns)
}

// HandleAdd logs a run. The matching whoop workout enriches the run
// with HR, strain and zone data, and the run history plus today's
// recovery produce a coaching insight. Whoop being unreachable
// degrades the response, it never fails the logging.
func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.add")
	defer span.End()

	var addReq AddRunRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("add run, unmarshal json params: %s", err)
		http.Error(w, "add run failed", http.StatusBadRequest)
		return
	}

	if addReq.DistanceMiles <= 0 || addReq.TimeMinutes <= 0 {
		http.Error(w, "error, distance and time must be positive", http.StatusBadRequest)
		return
	}

	now := handler.now()
	today := DateOf(now)
	run := Run{
		Date:          today,
		DistanceMiles: addReq.DistanceMiles,
		TimeMinutes:   addReq.TimeMinutes,
		PacePerMile:   FormatPace(addReq.TimeMinutes, addReq.DistanceMiles),
		Shoes:         normalizeShoe(addReq.Shoe),
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	workouts, err := handler.whoopClient.Workouts(ctx, todayStart, now)
	if err != nil {
		log.Warnf("add run, fetch whoop workouts: %s", err)
	}
	if workout := closestRunningWorkout(workouts, now); workout != nil && workout.Score != nil {
		score := workout.Score
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

	rec, err := handler.recovery.FetchToday(ctx)
	if err != nil {
		log.Warnf("add run, fetch today recovery: %s", err)
	}

	history, err := handler.repo.ListRange(ctx, DateOf(now.AddDate(0, 0, -30)), today)
	if err != nil {
		log.Errorf("add run, list run history: %s", err)
		http.Error(w, "error, failed to add run", http.StatusInternalServerError)
		return
	}

	addedRun, err := handler.repo.Add(ctx, run)
	if err != nil {
		log.Errorf("add run [%s]: %s", run.Date, err)
		http.Error(w, "error, failed to add run", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRuns.Inc()
	}

	pkg.SendJsonResponse(w, http.StatusCreated, AddRunResponse{
		Run:             *addedRun,
		CoachingInsight: CoachingInsight(*addedRun, history, rec),
	})
}

type TrendPoint struct {
	Date        string `json:"date"`
	PaceSeconds int    `json:"pace_seconds"`
	AvgHR       int    `json:"avg_hr"`
}

// fifteen minute miles and slower are walks or bad data
const maxTrendPaceSecs = 900

// HandleTrends returns pace and HR per run for runs with usable pace
// data, oldest first, for the trend chart.
func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.trends")
	defer span.End()

	allRuns, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("run trends, list runs: %s", err)
		http.Error(w, "error, failed to get run trends", http.StatusInternalServerError)
		return
	}

	points := []TrendPoint{}
	// ListAll is newest first, the chart wants oldest first
	for i := len(allRuns) - 1; i >= 0; i-- {
		run := allRuns[i]
		if run.AvgHR == nil {
			continue
		}
		paceSecs, ok := PaceToSeconds(run.PacePerMile)
		if !ok || paceSecs <= 0 || paceSecs >= maxTrendPaceSecs {
			continue
		}
		points = append(points, TrendPoint{
			Date:        run.Date,
			PaceSeconds: paceSecs,
			AvgHR:       *run.AvgHR,
		})
	}

	pkg.SendJsonResponse(w, http.StatusOK, points)
}

func (handler *Handler) HandleShoes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.shoes")
	defer span.End()

	shoes, err := handler.repo.MilesPerShoe(ctx)
	if err != nil {
		log.Errorf("shoes breakdown: %s", err)
		http.Error(w, "error, failed to get shoes", http.StatusInternalServerError)
		return
	}

	if shoes == nil {
		shoes = []ShoeMiles{}
	}
	for i := range shoes {
		shoes[i].Miles = math.Round(shoes[i].Miles*10) / 10
	}

	pkg.SendJsonResponse(w, http.StatusOK, shoes)
}

// closestRunningWorkout picks the running workout whose end time is
// nearest to now.
func closestRunningWorkout(workouts []whoop.Workout, now time.Time) *whoop.Workout {
	var closest *whoop.Workout
	var closestDiff time.Duration

	for i := range workouts {
		workout := workouts[i]
		if !strings.EqualFold(workout.SportName, "running") {
			continue
		}
		diff := now.Sub(workout.End)
		if diff < 0 {
			diff = -diff
		}
		if closest == nil || diff < closestDiff {
			closest = &workouts[i]
			closestDiff = diff
		}
	}

	return closest
}

func normalizeShoe(shoe string) string {
	return strings.ToLower(strings.TrimSpace(shoe))
}
