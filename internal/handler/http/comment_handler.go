package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
	"github.com/bereketsol/Inkwell/internal/handler/http/middleware"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUC: commentUC,
	}
}

// CreateComment posts a comment or, with parent_comment_id set, a reply
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	authorID := c.GetString(middleware.CtxUserID)
	comment, err := h.commentUC.CreateComment(c.Request.Context(), c.Param("blogID"), authorID, req.Content, req.ParentID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(*comment))
}

// GetComment fetches a single comment by ID
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentUC.GetComment(c.Request.Context(), c.Param("commentID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponse(*comment))
}

// UpdateComment edits a comment's content. Only the author or an elevated
// caller may edit.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	callerID := c.GetString(middleware.CtxUserID)
	comment, err := h.commentUC.UpdateComment(c.Request.Context(), c.Param("commentID"), callerID, isElevated(c), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponse(*comment))
}

// DeleteComment soft-deletes by default; ?hard=true removes the document
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	hard, _ := strconv.ParseBool(c.DefaultQuery("hard", "false"))
	callerID := c.GetString(middleware.CtxUserID)
	if err := h.commentUC.DeleteComment(c.Request.Context(), c.Param("commentID"), callerID, isElevated(c), !hard); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "comment deleted")
}

// GetBlogComments lists a post's comments assembled into threads
func (h *CommentHandler) GetBlogComments(c *gin.Context) {
	includeReplies, err := strconv.ParseBool(c.DefaultQuery("include_replies", "true"))
	if err != nil {
		includeReplies = true
	}

	threads, err := h.commentUC.ListByPost(c.Request.Context(), c.Param("blogID"), includeReplies)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentThreadResponses(threads))
}

// CountBlogComments returns the number of visible comments on a post
func (h *CommentHandler) CountBlogComments(c *gin.Context) {
	count, err := h.commentUC.CountByPost(c.Request.Context(), c.Param("blogID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"count": count})
}

// LikeComment adds the caller to the comment's likes set
func (h *CommentHandler) LikeComment(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.commentUC.LikeComment(c.Request.Context(), c.Param("commentID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "liked")
}

// UnlikeComment removes the caller from the comment's likes set
func (h *CommentHandler) UnlikeComment(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.commentUC.UnlikeComment(c.Request.Context(), c.Param("commentID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "unliked")
}
