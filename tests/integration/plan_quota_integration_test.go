// README: End-to-end test for the generation quota guard against a running API.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// TestPlanQuotaGuard seeds a user with one remaining generation and verifies
// that the second POST /api/plans is rejected with 429. Requires a running
// API instance and its Postgres database.
func TestPlanQuotaGuard(t *testing.T) {
	_ = godotenv.Load("../../.env")

	baseURL := strings.TrimRight(os.Getenv("WANDERLUST_API_BASE_URL"), "/")
	dsn := os.Getenv("WANDERLUST_TEST_DSN")
	if baseURL == "" || dsn == "" {
		t.Skip("WANDERLUST_API_BASE_URL and WANDERLUST_TEST_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	t.Cleanup(db.Close)

	uid := fmt.Sprintf("u%d", time.Now().UnixNano())
	month := time.Now().Format("2006-01")
	if _, err := db.Exec(ctx, `
		INSERT INTO plan_usage (uid, generations_remaining, last_reset_month)
		VALUES ($1, 1, $2)
	`, uid, month); err != nil {
		t.Fatalf("seed plan_usage: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM plan_usage WHERE uid = $1", uid)
	})

	client := &http.Client{Timeout: 100 * time.Second}
	waitForAPIReady(t, client, baseURL)

	status1, body1 := generatePlan(t, client, baseURL, uid)
	if status1 != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d, body=%s", status1, body1)
	}
	var okResp struct {
		Itinerary string `json:"itinerary"`
	}
	if err := json.Unmarshal(body1, &okResp); err != nil {
		t.Fatalf("first call: unmarshal: %v, raw=%s", err, body1)
	}

	status2, body2 := generatePlan(t, client, baseURL, uid)
	if status2 != http.StatusTooManyRequests {
		t.Fatalf("second call: expected 429, got %d, body=%s", status2, body2)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT generations_remaining FROM plan_usage WHERE uid = $1", uid).Scan(&remaining); err != nil {
		t.Fatalf("query remaining: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected generations_remaining=0 after both calls, got %d", remaining)
	}
}

func generatePlan(t *testing.T, client *http.Client, baseURL, uid string) (int, []byte) {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"uid": uid,
		"form": map[string]any{
			"destination": "Lisbon, Portugal",
			"duration":    2,
			"travelDate":  "2026-10-01",
			"currency":    "EUR",
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/plans", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/plans: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}
