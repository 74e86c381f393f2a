package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"cardamom-auction/internal/approval"
	"cardamom-auction/internal/auction"
	bidding "cardamom-auction/internal/biddingService"
	"cardamom-auction/internal/feed"
	model "cardamom-auction/internal/models"
	"cardamom-auction/internal/repository"
	"cardamom-auction/internal/server"
	"cardamom-auction/internal/settlement"

	"github.com/gin-gonic/gin"
)

// Caller identities as the upstream identity provider would send them
var (
	Admin   = map[string]string{server.HeaderUserID: "admin1", server.HeaderUserEmail: "admin@example.com", server.HeaderUserRole: "admin"}
	BidderA = map[string]string{server.HeaderUserID: "A", server.HeaderUserEmail: "a@example.com"}
	BidderB = map[string]string{server.HeaderUserID: "B", server.HeaderUserEmail: "b@example.com"}
	Seller  = map[string]string{server.HeaderUserID: "seller1", server.HeaderUserEmail: "seller@example.com"}
)

// SetupTestRouterWithLots initializes the router over an in-memory repository seeded with lots.
func SetupTestRouterWithLots(t *testing.T, lots ...model.Lot) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, lot := range lots {
		repo.AddLot(lot)
	}

	hub := feed.NewHub()
	auctionSvc := auction.NewService(repo, hub, time.Minute)
	t.Cleanup(auctionSvc.Shutdown)

	router := server.SetupRouter(server.Services{
		Bidding:    bidding.NewBiddingService(repo, hub, 64),
		Auction:    auctionSvc,
		Settlement: settlement.NewService(repo, settlement.SandboxVerifier{}, hub, "INR"),
		Approval:   approval.NewService(repo, hub),
		Feed:       hub,
	})
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request as the given caller and returns the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, headers map[string]string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data returns the data object of a response envelope
func Data(resp map[string]any) map[string]any {
	data, _ := resp["data"].(map[string]any)
	return data
}

// NotStartedLot is the lot L1 of the walkthrough, published but not yet open
func NotStartedLot(lotID string) model.Lot {
	now := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	return model.Lot{
		LotID:         lotID,
		AuctionNumber: "13/10-01-2026",
		Minimum:       2650,
		Maximum:       3800,
		AuctionCenter: model.CenterPuttady,
		TotalQuantity: 500,
		Seller:        model.SellerDetails{GradeCode: "8MM", SellerName: "Ravi", NumberOfBags: 10, BagSize: 50},
		State:         model.StateNotStarted,
		PublishedAt:   now,
		LastUpdated:   now,
	}
}
