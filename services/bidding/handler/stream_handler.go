package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cardamom-auction/internal/biddingerrors"
	"cardamom-auction/internal/feed"
	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

// Subscriber hands out change notifications for one lot, or all lots when lotID is empty
type Subscriber interface {
	Subscribe(lotID string) (<-chan feed.Event, func())
}

// StreamHandler pushes lot snapshots to clients as server-sent events.
// Every change event triggers a full re-read of the lot.
type StreamHandler struct {
	lots      AuctionServiceInterface
	bids      BiddingServiceInterface
	feed      Subscriber
	keepalive time.Duration
}

func NewStreamHandler(lots AuctionServiceInterface, bids BiddingServiceInterface, sub Subscriber, keepalive time.Duration) *StreamHandler {
	if keepalive <= 0 {
		keepalive = 15 * time.Second
	}
	return &StreamHandler{lots: lots, bids: bids, feed: sub, keepalive: keepalive}
}

// StreamLotHandler handles GET /lots/:lot_id/stream
func (h *StreamHandler) StreamLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	ctx := c.Request.Context()

	// subscribe before the first read so no change falls between the two
	events, cancel := h.feed.Subscribe(lotID)
	defer cancel()

	snap, err := h.snapshot(ctx, lotID)
	if err != nil {
		helpers.HandleServiceError(c, "StreamLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	h.serve(c, events, "snapshot", snap, func() (any, error) { return h.snapshot(ctx, lotID) })
}

// StreamLotsHandler handles GET /lots/stream
func (h *StreamHandler) StreamLotsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	events, cancel := h.feed.Subscribe("")
	defer cancel()

	list := func() (any, error) {
		lots, err := h.lots.ListLots(ctx)
		if lots == nil {
			lots = []model.Lot{}
		}
		return lots, err
	}
	first, err := list()
	if err != nil {
		helpers.HandleServiceError(c, "StreamLotsHandler", err, nil)
		return
	}

	h.serve(c, events, "lots", first, list)
}

func (h *StreamHandler) serve(c *gin.Context, events <-chan feed.Event, name string, first any, next func() (any, error)) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent(name, first)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			frame, err := next()
			if err != nil {
				utils.Warn("stream: snapshot read failed", map[string]any{"path": c.FullPath(), "error": err.Error()})
				continue
			}
			c.SSEvent(name, frame)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}

func (h *StreamHandler) snapshot(ctx context.Context, lotID string) (helpers.LotSnapshot, error) {
	lot, err := h.lots.GetLot(ctx, lotID)
	if err != nil {
		return helpers.LotSnapshot{}, err
	}

	bids, err := h.bids.GetBidsForLot(ctx, lotID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		return helpers.LotSnapshot{}, err
	}

	snap := helpers.LotSnapshot{Lot: lot, Bids: helpers.ToBidResponses(bids)}
	if len(bids) > 0 {
		top := helpers.ToBidResponse(bids[0])
		snap.Highest = &top
	}
	return snap, nil
}
