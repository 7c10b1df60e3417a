package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/common"
	"github.com/clipcraft/fulfillment/downloads/iface"
	"github.com/clipcraft/fulfillment/downloads/service"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
)

type downloadRequest struct {
	FilePath string `json:"filePath"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

type Downloads struct {
	loggerProvider logger.Provider
	service        iface.AccessGateway
}

// NewDownloads creates new downloads package handlers
func NewDownloads(loggerProvider logger.Provider, conn *connection.Connection) *Downloads {
	return &Downloads{
		loggerProvider,
		service.NewAccessGatewayService(loggerProvider, conn),
	}
}

// IssueDownloadURL returns a signed URL for a file the caller owns. The error
// kinds are distinct so the UI can branch on not-logged-in, bad request,
// not-yours and server problems.
func (h *Downloads) IssueDownloadURL(ctx *gin.Context) error {
	var req downloadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	uid := ctx.GetString(common.CtxKeys.UID)

	url, err := h.service.IssueDownloadURL(ctx, uid, req.FilePath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return web.NewRequestError(err, http.StatusUnauthorized)
		case errors.Is(err, service.ErrInvalidFilePath):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, service.ErrPathNotPermitted):
			return web.NewRequestError(err, http.StatusForbidden)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, downloadResponse{URL: url}, http.StatusOK)
}
