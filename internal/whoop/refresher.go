package whoop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/telemetry/metrics"
	"github.com/2beens/runintel/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=refresher_mocks_test.go -package=whoop_test

type recoveryStore interface {
	Upsert(ctx context.Context, sample recovery.Sample) (*recovery.Sample, error)
}

type recoveryFetcher interface {
	LatestRecovery(ctx context.Context, since time.Time) (*RecoveryRecord, error)
}

// Refresher periodically pulls the latest recovery from whoop and
// upserts it for its date. Whoop recalculates recovery during the day,
// so the stored sample is kept in sync.
type Refresher struct {
	store          recoveryStore
	client         recoveryFetcher
	interval       time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time

	mutex    sync.Mutex
	running  bool
	stopChan chan struct{}
}

func NewRefresher(
	store recoveryStore,
	client recoveryFetcher,
	interval time.Duration,
	metricsManager *metrics.Manager,
) *Refresher {
	return &Refresher{
		store:          store,
		client:         client,
		interval:       interval,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (rf *Refresher) Start() {
	rf.mutex.Lock()
	defer rf.mutex.Unlock()
	if rf.running {
		return
	}
	rf.running = true
	rf.stopChan = make(chan struct{})

	go func(stopChan chan struct{}) {
		ticker := time.NewTicker(rf.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := rf.RefreshToday(context.Background()); err != nil {
					log.Errorf("recovery refresher: %s", err)
					if rf.metricsManager != nil {
						rf.metricsManager.CounterRecoveryRefreshErrors.Inc()
					}
				}
			case <-stopChan:
				return
			}
		}
	}(rf.stopChan)
}

func (rf *Refresher) Stop() {
	rf.mutex.Lock()
	defer rf.mutex.Unlock()
	if !rf.running {
		return
	}
	rf.running = false
	close(rf.stopChan)
}

func (rf *Refresher) IsRunning() bool {
	rf.mutex.Lock()
	defer rf.mutex.Unlock()
	return rf.running
}

func (rf *Refresher) Status() string {
	if rf.IsRunning() {
		return "running"
	}
	return "stopped"
}

// RefreshToday pulls the latest recovery and stores it.
func (rf *Refresher) RefreshToday(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "whoop.refresher.refreshToday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if rf.metricsManager != nil {
		rf.metricsManager.CounterRecoveryRefreshes.Inc()
	}

	sample, err := rf.FetchToday(ctx)
	if err != nil {
		return err
	}
	if sample == nil {
		log.Debugln("recovery refresher: no recovery from whoop yet")
		return nil
	}

	log.Debugf("recovery refresher: stored sample for %s", sample.Date)
	return nil
}

// FetchToday pulls the latest recovery record from whoop, converts and
// upserts it, and returns the stored sample. Returns nil without error
// when whoop has no recovery for today yet.
func (rf *Refresher) FetchToday(ctx context.Context) (*recovery.Sample, error) {
	since := rf.now().Add(-48 * time.Hour)
	record, err := rf.client.LatestRecovery(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch latest recovery: %w", err)
	}
	if record == nil || record.Score == nil {
		return nil, nil
	}

	today := recovery.DateOf(rf.now())
	if recovery.DateOf(record.CreatedAt) != today {
		return nil, nil
	}

	sample := recovery.Sample{
		Date:      today,
		Score:     record.Score.RecoveryScore,
		HRV:       record.Score.HRVRmssdMilli,
		RestingHR: record.Score.RestingHeartRate,
	}

	stored, err := rf.store.Upsert(ctx, sample)
	if err != nil {
		return nil, fmt.Errorf("store recovery sample: %w", err)
	}
	return stored, nil
}
