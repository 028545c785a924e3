package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"powerbank-rental/api/config"
	"powerbank-rental/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	api        *API
	stations   *fakeStationRepo
	powerBanks *fakePowerBankRepo
	users      *fakeUserRepo
	payments   *fakePaymentRepo
}

func newTestEnv() *testEnv {
	cfg := &config.Config{
		PublicDomain:     "http://localhost:4242",
		OverdueThreshold: 24 * time.Hour,
		ReservationTTL:   15 * time.Minute,
		MaxReminders:     3,
	}
	stations := newFakeStationRepo()
	powerBanks := newFakePowerBankRepo()
	users := newFakeUserRepo()
	payments := newFakePaymentRepo()
	return &testEnv{
		api:        New(cfg, stations, powerBanks, users, payments),
		stations:   stations,
		powerBanks: powerBanks,
		users:      users,
		payments:   payments,
	}
}

func (e *testEnv) seedStation(t *testing.T, stationID, freeBanks int) {
	t.Helper()
	err := e.stations.Upsert(context.Background(), &models.Station{
		StationID: stationID,
		Location:  "Test Street 1, Vilnius",
		Capacity:  freeBanks,
	})
	require.NoError(t, err)
	for i := 0; i < freeBanks; i++ {
		err := e.powerBanks.Insert(context.Background(), &models.PowerBank{
			ID:        uuid.NewString(),
			StationID: stationID,
			Status:    models.PowerBankStatusFree,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
}

func getRequest(target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return c, w
}

func postJSON(t *testing.T, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
