package handler

import (
	"context"
	"fmt"
	"net/http"

	"cardamom-auction/internal/approval"
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=submission_handler.go -destination=mock_approval_service_test.go -package=handler

type ApprovalServiceInterface interface {
	Submit(ctx context.Context, seller model.Identity, in approval.SubmissionInput) (model.Submission, error)
	Get(ctx context.Context, submissionID string) (model.Submission, error)
	List(ctx context.Context, status model.ApprovalStatus) ([]model.Submission, error)
	FirstApprove(ctx context.Context, submissionID string) (model.Submission, error)
	SecondApprove(ctx context.Context, submissionID string) (model.Submission, error)
	Reject(ctx context.Context, submissionID string) (model.Submission, error)
	AddToAuction(ctx context.Context, submissionID string, minimum, maximum float64) (model.Lot, error)
}

type SubmissionHandler struct {
	service ApprovalServiceInterface
}

func NewSubmissionHandler(service ApprovalServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// CreateSubmissionHandler handles POST /submissions
func (h *SubmissionHandler) CreateSubmissionHandler(c *gin.Context) {
	var req helpers.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSubmissionHandler", err)
		return
	}

	seller := helpers.CurrentIdentity(c)
	sub, err := h.service.Submit(c.Request.Context(), seller, approval.SubmissionInput{
		AuctionCenter: model.AuctionCenter(req.AuctionCenter),
		TotalQuantity: req.TotalQuantity,
		Seller: model.SellerDetails{
			GradeCode:    req.GradeCode,
			SellerName:   req.SellerName,
			NumberOfBags: req.NumberOfBags,
			BagSize:      req.BagSize,
		},
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateSubmissionHandler", err, map[string]any{"seller_id": seller.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, sub, "submission received")
}

// GetSubmissionHandler handles GET /submissions/:submission_id
func (h *SubmissionHandler) GetSubmissionHandler(c *gin.Context) {
	id := c.Param("submission_id")
	sub, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetSubmissionHandler", err, map[string]any{"submission_id": id})
		return
	}

	caller := helpers.CurrentIdentity(c)
	if sub.SellerID != caller.UserID && !caller.IsAdmin() {
		helpers.HandleServiceError(c, "GetSubmissionHandler", fmt.Errorf("submission %s: %w", id, biddingerrors.ErrSubmissionNotFound), map[string]any{"user_id": caller.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, sub, "submission retrieved successfully")
}

// ListSubmissionsHandler handles GET /admin/submissions?status=
func (h *SubmissionHandler) ListSubmissionsHandler(c *gin.Context) {
	status := model.ApprovalStatus(c.Query("status"))
	subs, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		helpers.HandleServiceError(c, "ListSubmissionsHandler", err, map[string]any{"status": string(status)})
		return
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	utils.JSONResponse(c, http.StatusOK, subs, "submissions retrieved successfully")
}

// FirstApprovalHandler handles POST /admin/submissions/:submission_id/first-approval
func (h *SubmissionHandler) FirstApprovalHandler(c *gin.Context) {
	h.review(c, "FirstApprovalHandler", "first approval recorded", h.service.FirstApprove)
}

// SecondApprovalHandler handles POST /admin/submissions/:submission_id/second-approval
func (h *SubmissionHandler) SecondApprovalHandler(c *gin.Context) {
	h.review(c, "SecondApprovalHandler", "second approval recorded", h.service.SecondApprove)
}

// RejectHandler handles POST /admin/submissions/:submission_id/reject
func (h *SubmissionHandler) RejectHandler(c *gin.Context) {
	h.review(c, "RejectHandler", "submission rejected", h.service.Reject)
}

// AddToAuctionHandler handles POST /admin/submissions/:submission_id/auction
func (h *SubmissionHandler) AddToAuctionHandler(c *gin.Context) {
	id := c.Param("submission_id")

	var req helpers.AddToAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToAuctionHandler", err)
		return
	}

	lot, err := h.service.AddToAuction(c.Request.Context(), id, req.Minimum, req.Maximum)
	if err != nil {
		helpers.HandleServiceError(c, "AddToAuctionHandler", err, map[string]any{"submission_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot added to auction")
	helpers.LogSuccess("AddToAuctionHandler", "lot added to auction", map[string]any{
		"submission_id":  id,
		"lot_id":         lot.LotID,
		"auction_number": lot.AuctionNumber,
	})
}

func (h *SubmissionHandler) review(c *gin.Context, handlerName, message string, step func(context.Context, string) (model.Submission, error)) {
	id := c.Param("submission_id")
	sub, err := step(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"submission_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sub, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"submission_id": id,
		"admin":         helpers.CurrentIdentity(c).UserID,
	})
}
