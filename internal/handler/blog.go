package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/client"
	"mall-storefront/internal/service"
)

type BlogHandler struct {
	api      client.StorefrontClient
	sessions service.SessionService
	toggles  service.ToggleService
}

func NewBlogHandler(api client.StorefrontClient, sessions service.SessionService, toggles service.ToggleService) *BlogHandler {
	return &BlogHandler{api: api, sessions: sessions, toggles: toggles}
}

func (h *BlogHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.api.GetBlogs(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result, "")
}

func (h *BlogHandler) Get(c echo.Context) error {
	blogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid blog id")
	}

	blog, svcErr := h.api.GetBlog(c.Request().Context(), blogID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	liked, _ := h.toggles.BlogLiked(blogID)
	return respond(c, http.StatusOK, echo.Map{
		"blog":  blog,
		"liked": liked,
	}, "")
}

func (h *BlogHandler) CreateComment(c echo.Context) error {
	blogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid blog id")
	}

	var req struct {
		Content         string `json:"content"`
		ParentCommentID *int64 `json:"parentCommentID"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Content == "" {
		return respond(c, http.StatusBadRequest, nil, "Comment cannot be empty")
	}

	if err := h.api.CreateComment(c.Request().Context(), blogID, req.Content, req.ParentCommentID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Comment posted")
}

// EditComment gates on ownership: only the author may edit. The backend
// enforces the same rule; this check just avoids a doomed round trip.
func (h *BlogHandler) EditComment(c echo.Context) error {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req struct {
		Content string `json:"content"`
		OwnerID int64  `json:"ownerID"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if !h.sessions.CanModify(req.OwnerID) {
		return respond(c, http.StatusForbidden, nil, "You can only edit your own comments")
	}

	if err := h.api.EditComment(c.Request().Context(), commentID, req.Content); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Comment updated")
}

func (h *BlogHandler) DeleteComment(c echo.Context) error {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req struct {
		OwnerID int64 `json:"ownerID"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if !h.sessions.CanModify(req.OwnerID) {
		return respond(c, http.StatusForbidden, nil, "You can only delete your own comments")
	}

	if err := h.api.DeleteComment(c.Request().Context(), commentID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Comment deleted")
}
