package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/usecase/export"
	"multisuministros-codes/internal/usecase/similarity"
)

type ProductHandler struct {
	sim *similarity.Usecase
	exp *export.Usecase
}

func NewProductHandler(sim *similarity.Usecase, exp *export.Usecase) *ProductHandler {
	return &ProductHandler{sim: sim, exp: exp}
}

// Similar: GET /api/products/similar?descripcion=...&top_n=3
func (h *ProductHandler) Similar(c echo.Context) error {
	topN := similarity.DefaultTopN
	if raw := c.QueryParam("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "top_n must be an integer between 1 and 50"})
		}
		topN = n
	}
	out, err := h.sim.Similar(c.Request().Context(), c.QueryParam("descripcion"), topN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Search: GET /api/products/search?q=...&proveedor=...
func (h *ProductHandler) Search(c echo.Context) error {
	out, err := h.sim.Search(c.Request().Context(), similarity.SearchInput{
		Query:    c.QueryParam("q"),
		Supplier: c.QueryParam("proveedor"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="productos.csv"`)
	// headers are not committed until the first write, so errors before the
	// header row still get a JSON body
	w := &lazyWriter{res: res}
	if err := h.exp.CatalogCSV(c.Request().Context(), middleware.SessionFrom(c), w); err != nil {
		if w.started {
			return err
		}
		res.Header().Del(echo.HeaderContentDisposition)
		res.Header().Del(echo.HeaderContentType)
		return writeError(c, err)
	}
	if !w.started {
		res.WriteHeader(http.StatusOK)
	}
	return nil
}

type lazyWriter struct {
	res     *echo.Response
	started bool
}

func (w *lazyWriter) Write(b []byte) (int, error) {
	if !w.started {
		w.started = true
		w.res.WriteHeader(http.StatusOK)
	}
	return w.res.Write(b)
}
