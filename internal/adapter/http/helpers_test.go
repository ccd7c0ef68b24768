package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/pkg/session"
)

var (
	adminSess  = session.Session{UserID: 1, Username: "root", Role: "admin", IsAuthenticated: true}
	vendorSess = session.Session{UserID: 2, Username: "ana", Role: "vendedor", IsAuthenticated: true}
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// newCtx builds an echo context carrying s, with JSON body when body != nil.
func newCtx(e *echo.Echo, method, target string, body io.Reader, s session.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.WithSession(c, s)
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var out ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
