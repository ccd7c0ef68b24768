package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type credentialsReq struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"notblank"`
}

type userResp struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// unknown user and wrong password look the same from outside
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Register is public vendor self-registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.RegisterVendor(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, userResp{ID: u.ID, Username: u.Username, Role: string(u.Role)})
}

func (h *AuthHandler) CreateVendor(c echo.Context) error {
	var req credentialsReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.CreateVendor(c.Request().Context(), middleware.SessionFrom(c), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, userResp{ID: u.ID, Username: u.Username, Role: string(u.Role)})
}

func (h *AuthHandler) VendorCount(c echo.Context) error {
	res, err := h.uc.VendorCount(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
