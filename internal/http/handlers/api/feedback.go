package api

import (
	"github.com/livemart/internal/http/response"
	"github.com/livemart/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitFeedbackRequest 评价提交请求
type SubmitFeedbackRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// SubmitFeedback 提交评价并触发评分重算
func (h *Handler) SubmitFeedback(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	feedback, err := h.FeedbackService.Submit(uid, service.SubmitInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondFeedbackError(c, err)
		return
	}
	response.Success(c, feedback)
}

// ListProductFeedback 商品评价列表，按提交时间倒序
func (h *Handler) ListProductFeedback(c *gin.Context) {
	productID, ok := parseUintParam(c, "product_id", "error.product_not_found")
	if !ok {
		return
	}

	feedbacks, err := h.FeedbackService.ListByProduct(productID)
	if err != nil {
		respondFeedbackError(c, err)
		return
	}
	response.Success(c, gin.H{"feedbacks": feedbacks})
}
