package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"multisuministros-codes/internal/adapter/middleware"
	domain "multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/usecase/coderequest"
)

type RequestHandler struct{ uc *coderequest.Usecase }

func NewRequestHandler(uc *coderequest.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type submitReq struct {
	Description string   `json:"descripcion" validate:"notblank"`
	Price       *float64 `json:"precio"      validate:"required,gte=0,dec2"`
	Supplier    string   `json:"proveedor"   validate:"max=255"`
}

type approveReq struct {
	Code string `json:"codigo" validate:"notblank,max=64"`
}

type rejectReq struct {
	Reason string `json:"motivo" validate:"notblank"`
}

type decisionResp struct {
	ID     uint64        `json:"id"`
	Status domain.Status `json:"estado"`
}

func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Submit(c.Request().Context(), middleware.SessionFrom(c), coderequest.SubmitInput{
		Description: req.Description,
		Price:       decimal.NewFromFloat(*req.Price).Round(2),
		Supplier:    req.Supplier,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RequestHandler) Approve(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	var req approveReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Approve(c.Request().Context(), middleware.SessionFrom(c), id, req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *RequestHandler) Reject(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	var req rejectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.Reject(c.Request().Context(), middleware.SessionFrom(c), id, req.Reason); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, decisionResp{ID: id, Status: domain.StatusRejected})
}

func (h *RequestHandler) Pending(c echo.Context) error {
	list, err := h.uc.ListPending(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, nonNil(list))
}

func (h *RequestHandler) Mine(c echo.Context) error {
	list, err := h.uc.ListMine(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, nonNil(list))
}

// nonNil keeps empty lists as [] in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
