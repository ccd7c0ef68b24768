package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notification.Usecase }

func NewNotificationHandler(uc *notification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	in, err := h.uc.ListFor(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	n, err := h.uc.MarkAllRead(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}
