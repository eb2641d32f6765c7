package whoop_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2beens/runintel/internal/whoop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenProvider struct {
	accessToken    string
	accessTokenErr error
	refreshCalls   atomic.Int32
	refreshErr     error
}

func (s *stubTokenProvider) AccessToken(_ context.Context) (string, error) {
	return s.accessToken, s.accessTokenErr
}

func (s *stubTokenProvider) ForceRefresh(_ context.Context) error {
	s.refreshCalls.Add(1)
	return s.refreshErr
}

func TestClient_Workouts_Pagination(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/developer/v2/activity/workout", r.URL.Path)
		require.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))
		require.Equal(t, "25", r.URL.Query().Get("limit"))

		switch requests.Add(1) {
		case 1:
			assert.Empty(t, r.URL.Query().Get("nextToken"))
			w.Write([]byte(`{
				"records": [
					{"id": "w1", "sport_name": "running", "score": {"strain": 10.5, "average_heart_rate": 150}},
					{"id": "w2", "sport_name": "weightlifting"}
				],
				"next_token": "page-2"
			}`))
		case 2:
			assert.Equal(t, "page-2", r.URL.Query().Get("nextToken"))
			w.Write([]byte(`{
				"records": [
					{"id": "w3", "sport_name": "running", "score": {"strain": 8.1}}
				],
				"next_token": null
			}`))
		default:
			t.Error("unexpected third page request")
		}
	}))
	defer server.Close()

	tokens := &stubTokenProvider{accessToken: "test-access-token"}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	workouts, err := client.Workouts(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, "w1", workouts[0].ID)
	assert.Equal(t, "running", workouts[0].SportName)
	require.NotNil(t, workouts[0].Score)
	assert.Equal(t, 10.5, *workouts[0].Score.Strain)
	assert.Equal(t, 150, *workouts[0].Score.AverageHeartRate)
	assert.Nil(t, workouts[1].Score)
	assert.Equal(t, "w3", workouts[2].ID)
	assert.Equal(t, int32(2), requests.Load())
}

func TestClient_Recoveries_UnauthorizedTriggersRefresh(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{
			"records": [
				{"cycle_id": 1, "created_at": "2026-08-23T06:00:00Z", "score": {"recovery_score": 66, "hrv_rmssd_milli": 52.3, "resting_heart_rate": 47}}
			],
			"next_token": null
		}`))
	}))
	defer server.Close()

	tokens := &stubTokenProvider{accessToken: "test-access-token"}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	recoveries, err := client.Recoveries(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	require.NoError(t, err)
	require.Len(t, recoveries, 1)
	assert.Equal(t, int32(1), tokens.refreshCalls.Load())
	require.NotNil(t, recoveries[0].Score)
	assert.Equal(t, 66.0, *recoveries[0].Score.RecoveryScore)
}

func TestClient_Recoveries_UnauthorizedRefreshFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &stubTokenProvider{
		accessToken: "test-access-token",
		refreshErr:  errors.New("refresh token revoked"),
	}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	_, err := client.Recoveries(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh token revoked")
}

func TestClient_RateLimited_RetriesWithRetryAfter(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"records": [], "next_token": null}`))
	}))
	defer server.Close()

	tokens := &stubTokenProvider{accessToken: "test-access-token"}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	begin := time.Now()
	workouts, err := client.Workouts(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, workouts)
	assert.Equal(t, int32(2), requests.Load())
	assert.GreaterOrEqual(t, time.Since(begin), time.Second)
}

func TestClient_LatestRecovery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"records": [
				{"cycle_id": 1, "created_at": "2026-08-22T06:00:00Z", "score": {"recovery_score": 50}},
				{"cycle_id": 2, "created_at": "2026-08-23T06:00:00Z", "score": {"recovery_score": 70}}
			],
			"next_token": null
		}`))
	}))
	defer server.Close()

	tokens := &stubTokenProvider{accessToken: "test-access-token"}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	latest, err := client.LatestRecovery(context.Background(), time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(2), latest.CycleID)
}

func TestClient_Profile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/developer/v2/user/profile/basic", r.URL.Path)
		w.Write([]byte(`{"user_id": 42, "email": "runner@example.com", "first_name": "Test", "last_name": "Runner"}`))
	}))
	defer server.Close()

	tokens := &stubTokenProvider{accessToken: "test-access-token"}
	client := whoop.NewClient(server.URL, server.Client(), tokens)

	profile, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)
	assert.Equal(t, "Test Runner", profile.FirstName+" "+profile.LastName)
}
