package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nexustap/config"
	"nexustap/db"
	"nexustap/models"
	"nexustap/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storePath := filepath.Join(t.TempDir(), "users.json")
	store := db.NewFileStore(storePath)
	ledger := services.NewLedger(store, services.NewDevBroadcaster(), nil)

	cfg := &config.Config{}
	cfg.Chain.ExplorerURL = "https://testnet3.explorer.nexus.xyz"
	Init(ledger, cfg)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/leaderboard", GetLeaderboard)
	api.GET("/leaderboard/compact", GetCompactLeaderboard)
	api.GET("/user/:address", GetUser)
	api.POST("/user/:address", UpdateUserPoints)
	api.POST("/user/:address/tap", Tap)
	api.POST("/user/:address/claim", ClaimTaps)
	api.POST("/user/:address/daily", ClaimDaily)
	api.POST("/user/:address/bridge", Bridge)
	return router, storePath
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const apiAddress = "0x1234567890abcdef1234567890abcdef12345678"

func TestGetUnknownUserReturnsDefaultWithoutPersisting(t *testing.T) {
	router, storePath := newTestRouter(t)

	for i := 0; i < 2; i++ {
		w := doRequest(router, http.MethodGet, "/api/user/"+apiAddress, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var rec models.UserRecord
		if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if rec.Address != apiAddress || rec.TotalEarned != 0 || rec.Energy != 100 {
			t.Errorf("unexpected default record: %+v", rec)
		}
		if rec.LastClaimDate != nil || len(rec.Activities) != 0 {
			t.Errorf("default record should be empty: %+v", rec)
		}
	}

	if _, err := os.Stat(storePath); !os.IsNotExist(err) {
		t.Error("GET must not create persisted state")
	}
}

func TestUpdateUserPointsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/user/"+apiAddress,
		`{"points": 100, "activityType": "bridge", "action": "Swapped 1 ETH to Nexus"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rec models.UserRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rec.TotalEarned != 100 || len(rec.Activities) != 1 {
		t.Errorf("unexpected record after update: %+v", rec)
	}

	// Invalid payloads never reach the store
	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress,
		`{"points": 10, "activityType": "jackpot", "action": "?"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown activity type, got %d", w.Code)
	}
	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress,
		`{"points": -5, "activityType": "game", "action": "?"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative points, got %d", w.Code)
	}
}

func TestTapClaimFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/tap", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for tap, got %d: %s", w.Code, w.Body.String())
	}

	var tap services.TapResult
	if err := json.Unmarshal(w.Body.Bytes(), &tap); err != nil {
		t.Fatalf("invalid tap response: %v", err)
	}
	if tap.Energy != 99 || tap.PendingTaps != 1 {
		t.Errorf("unexpected tap result: %+v", tap)
	}

	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/claim", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for claim, got %d: %s", w.Code, w.Body.String())
	}

	var claim struct {
		User        models.UserRecord `json:"user"`
		TxHash      string            `json:"txHash"`
		ExplorerURL string            `json:"explorerUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &claim); err != nil {
		t.Fatalf("invalid claim response: %v", err)
	}
	if claim.User.TotalEarned != 1 || claim.User.PendingTaps != 0 {
		t.Errorf("unexpected record after claim: %+v", claim.User)
	}
	if !strings.HasPrefix(claim.TxHash, "0x") {
		t.Errorf("expected a transaction hash, got %q", claim.TxHash)
	}
	if !strings.Contains(claim.ExplorerURL, claim.TxHash) {
		t.Errorf("explorer url should reference the tx: %s", claim.ExplorerURL)
	}

	// Nothing left to claim
	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/claim", "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 with nothing pending, got %d", w.Code)
	}
}

func TestDailyClaimEndpointCooldown(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for first daily claim, got %d: %s", w.Code, w.Body.String())
	}

	var rec models.UserRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rec.TotalEarned != 50 || rec.DailyStreak != 1 {
		t.Errorf("unexpected record after daily claim: %+v", rec)
	}

	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/daily", "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 inside the cooldown window, got %d", w.Code)
	}
}

func TestBridgeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/bridge", `{"amount": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero amount, got %d", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/user/"+apiAddress+"/bridge", `{"amount": 1.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rec models.UserRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rec.TotalEarned != 150 {
		t.Errorf("expected 150 points for a 1.5 swap, got %d", rec.TotalEarned)
	}
}

func TestLeaderboardEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/user/0xaaaa000000000000000000000000000000000001",
		`{"points": 300, "activityType": "game", "action": "claim"}`)
	doRequest(router, http.MethodPost, "/api/user/0xbbbb000000000000000000000000000000000002",
		`{"points": 500, "activityType": "bridge", "action": "swap"}`)

	w := doRequest(router, http.MethodGet, "/api/leaderboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var entries []services.LeaderboardEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid leaderboard body: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Rank != 1 || entries[0].Points != 500 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Rank != 2 || entries[1].Points != 300 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}

	w = doRequest(router, http.MethodGet,
		"/api/leaderboard/compact?viewer=0xaaaa000000000000000000000000000000000001", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for compact view, got %d", w.Code)
	}
	var compact []services.CompactEntry
	if err := json.Unmarshal(w.Body.Bytes(), &compact); err != nil {
		t.Fatalf("invalid compact body: %v", err)
	}
	if len(compact) != 2 || !compact[1].CurrentUser {
		t.Errorf("unexpected compact view: %+v", compact)
	}
}
