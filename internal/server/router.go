package server

import (
	"time"

	handler "cardamom-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// Services are the collaborators the HTTP surface is built on
type Services struct {
	Bidding    handler.BiddingServiceInterface
	Auction    handler.AuctionServiceInterface
	Settlement handler.SettlementServiceInterface
	Approval   handler.ApprovalServiceInterface
	Feed       handler.Subscriber

	StreamKeepalive time.Duration
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(IdentityMiddleware)      // caller identity from upstream headers
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(svc.Bidding)
	lotHandler := handler.NewLotHandler(svc.Auction)
	paymentHandler := handler.NewPaymentHandler(svc.Settlement)
	submissionHandler := handler.NewSubmissionHandler(svc.Approval)
	streamHandler := handler.NewStreamHandler(svc.Auction, svc.Bidding, svc.Feed, svc.StreamKeepalive)

	lots := router.Group("/lots")
	{
		lots.GET("", lotHandler.ListLotsHandler)
		lots.GET("/stream", streamHandler.StreamLotsHandler)
		lots.GET("/:lot_id", lotHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", biddingHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/highest", biddingHandler.GetHighestBidHandler)
		lots.GET("/:lot_id/quick-bid", biddingHandler.QuickBidHandler)
		lots.GET("/:lot_id/stream", streamHandler.StreamLotHandler)
		lots.GET("/:lot_id/winner", lotHandler.WinnerHandler)
		lots.GET("/:lot_id/payment", paymentHandler.GetPaymentHandler)

		lots.POST("/:lot_id/bids", RequireIdentity, biddingHandler.SubmitBidHandler)
		lots.POST("/:lot_id/payment/intent", RequireIdentity, paymentHandler.InitiatePaymentHandler)
		lots.POST("/:lot_id/payment", RequireIdentity, paymentHandler.FinalizePaymentHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/lots", biddingHandler.GetLotsByUserHandler)
	}

	submissions := router.Group("/submissions", RequireIdentity)
	{
		submissions.POST("", submissionHandler.CreateSubmissionHandler)
		submissions.GET("/:submission_id", submissionHandler.GetSubmissionHandler)
	}

	admin := router.Group("/admin", RequireAdmin)
	{
		admin.GET("/submissions", submissionHandler.ListSubmissionsHandler)
		admin.POST("/submissions/:submission_id/first-approval", submissionHandler.FirstApprovalHandler)
		admin.POST("/submissions/:submission_id/second-approval", submissionHandler.SecondApprovalHandler)
		admin.POST("/submissions/:submission_id/reject", submissionHandler.RejectHandler)
		admin.POST("/submissions/:submission_id/auction", submissionHandler.AddToAuctionHandler)

		admin.POST("/lots/:lot_id/open", lotHandler.OpenBiddingHandler)
		admin.POST("/lots/:lot_id/close", lotHandler.CloseAuctionHandler)
		admin.POST("/lots/:lot_id/countdown", lotHandler.StartCountdownHandler)
		admin.DELETE("/lots/:lot_id/countdown", lotHandler.CancelCountdownHandler)
		admin.POST("/lots/:lot_id/reconcile", paymentHandler.ReconcileHandler)
	}

	return router
}
