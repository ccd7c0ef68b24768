package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/usecase/setting"
)

type SettingHandler struct{ uc *setting.Usecase }

func NewSettingHandler(uc *setting.Usecase) *SettingHandler { return &SettingHandler{uc: uc} }

type toleranceReq struct {
	Value *float64 `json:"value" validate:"required,gte=0,lte=1"`
}

func (h *SettingHandler) GetTolerance(c echo.Context) error {
	t, err := h.uc.GetTolerance(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *SettingHandler) SetTolerance(c echo.Context) error {
	var req toleranceReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	t, err := h.uc.SetTolerance(c.Request().Context(), middleware.SessionFrom(c), *req.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}
