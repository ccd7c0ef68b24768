package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler { return &Handler{db: db} }

type healthResp struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// Health answers 503 when the database does not answer a ping within 2s.
func (h *Handler) Health(c echo.Context) error {
	res := healthResp{Status: "ok", Database: "up", Time: time.Now().UTC().Format(time.RFC3339Nano)}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		log.Printf("health: db ping: %v", err)
		res.Status, res.Database = "degraded", "down"
		return c.JSON(http.StatusServiceUnavailable, res)
	}
	return c.JSON(http.StatusOK, res)
}
