//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/mealplanner-backend/internal/app"
	"github.com/heartmarshall/mealplanner-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the production wiring (postgres backend,
// migrations, middleware chain) against the shared test container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	cfg := &config.Config{
		Storage:  config.StorageConfig{Driver: config.DriverPostgres},
		Database: config.DatabaseConfig{
			DSN:             pool.Config().ConnString(),
			MaxConns:        4,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		CORS:     config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS"},
		Planner: config.PlannerConfig{
			Timezone:       "UTC",
			RetentionWeeks: 4,
			HouseholdName:  "E2E Home",
			Location:       time.UTC,
		},
	}
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := app.NewBackend(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(backend.Close)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, backend))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// do sends a JSON request and decodes the JSON response into out when non-nil.
func (ts *testServer) do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// uniqueWeek returns a Monday far in the future so tests sharing the
// household never land on the same week plan.
func uniqueWeek() time.Time {
	base := time.Date(2100, 1, 4, 0, 0, 0, 0, time.UTC) // a Monday
	return base.AddDate(0, 0, 7*rand.IntN(50000))
}

// oldWeek returns a Monday well past any retention window.
func oldWeek() time.Time {
	base := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	return base.AddDate(0, 0, 7*rand.IntN(500))
}

func date(d time.Time) string {
	return d.Format(time.DateOnly)
}

// createWeekPlan fetch-or-creates the plan of the week containing day and
// returns its id.
func (ts *testServer) createWeekPlan(t *testing.T, day time.Time) string {
	t.Helper()
	var wp struct {
		ID        string `json:"id"`
		WeekStart string `json:"weekStart"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/week-plans", map[string]string{"weekStart": date(day)}, &wp))
	require.NotEmpty(t, wp.ID)
	return wp.ID
}

func (ts *testServer) createMeal(t *testing.T, name string, ingredients ...string) string {
	t.Helper()
	var m struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/meals", map[string]any{
		"name":        name,
		"tags":        []string{"all"},
		"ingredients": ingredients,
	}, &m))
	return m.ID
}

type item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	OriginType string  `json:"originType"`
	OriginMeal *string `json:"originMeal"`
	OriginSlot *string `json:"originSlot"`
	OriginDate string  `json:"originDate"`
	Ticked     bool    `json:"ticked"`
}

type shoppingList struct {
	ToBuy  []item `json:"toBuy"`
	Ticked []item `json:"ticked"`
}

// planItems drops usual items, which other tests may have added to the
// shared household.
func planItems(items []item) []item {
	var out []item
	for _, it := range items {
		if it.OriginType != "usual" {
			out = append(out, it)
		}
	}
	return out
}

func itemNames(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func findItem(t *testing.T, items []item, name string) item {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found in %v", name, itemNames(items))
	return item{}
}

func (ts *testServer) generate(t *testing.T, weekPlanID string) shoppingList {
	t.Helper()
	var res struct {
		List shoppingList `json:"list"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/week-plans/"+weekPlanID+"/shopping-list/generate", nil, &res))
	return res.List
}
