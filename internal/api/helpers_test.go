package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/priyasinghal/skillpath/internal/catalog"
	"github.com/priyasinghal/skillpath/internal/coach"
	"github.com/priyasinghal/skillpath/internal/roadmap"
	"github.com/priyasinghal/skillpath/internal/testutil"
)

// newTestServer spins up the full API over an in-memory database with the
// rule-based coach only. The returned client carries cookies across requests.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	database := testutil.NewTestDB(t)
	generator := roadmap.NewGenerator(catalog.NewMatcher(catalog.New(nil)))
	coachSvc := coach.NewService(nil, coach.NewRuleResponder(), generator, nil)

	h := NewHandler(database, coachSvc, time.Hour, true, nil)
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

// newSecondClient returns an independent cookie-carrying client for
// exercising another account against the same server.
func newSecondClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v), "body: %s", string(data))
	return v
}

// registerTestUser registers and logs in a fresh account on the test server.
func registerTestUser(t *testing.T, client *http.Client, baseURL, email string) userResponse {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/auth/register", registerRequest{
		Name:     "Priya",
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[userResponse](t, resp)
}
