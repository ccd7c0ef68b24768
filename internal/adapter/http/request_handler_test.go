package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"github.com/shopspring/decimal"

	domain "multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/domain/notification"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/domain/uow"
	"multisuministros-codes/internal/testutil/notificationmock"
	"multisuministros-codes/internal/testutil/productmock"
	"multisuministros-codes/internal/testutil/requestmock"
	"multisuministros-codes/internal/testutil/uowmock"
	"multisuministros-codes/internal/usecase/coderequest"
)

func newRequestHandler(reqs *requestmock.Repo, prods *productmock.Repo) *RequestHandler {
	notes := &notificationmock.Repo{CreateFn: func(context.Context, *notification.Notification) error { return nil }}
	tx := uowmock.Passthrough(uow.Repos{Requests: reqs, Products: prods, Notifications: notes})
	return NewRequestHandler(coderequest.NewUsecase(reqs, tx))
}

func TestSubmit_Created(t *testing.T) {
	e := newEchoWithValidator()
	reqs := &requestmock.Repo{CreateFn: func(_ context.Context, r *domain.CodeRequest) error {
		r.ID = 7
		return nil
	}}
	h := newRequestHandler(reqs, &productmock.Repo{})

	body := map[string]any{"descripcion": "Cable USB-C 1m", "precio": 500, "proveedor": "TechCR"}
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/requests", mustJSON(body), vendorSess)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got domain.CodeRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != 7 || got.Status != domain.StatusPending || got.Submitter != "ana" || !got.Price.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestSubmit_ValidationErrors(t *testing.T) {
	e := newEchoWithValidator()
	h := newRequestHandler(&requestmock.Repo{}, &productmock.Repo{})

	cases := []struct {
		name  string
		body  map[string]any
		field string
		msg   string
	}{
		{"missing price", map[string]any{"descripcion": "x"}, "precio", "is required"},
		{"negative price", map[string]any{"descripcion": "x", "precio": -1}, "precio", "greater than or equal to 0"},
		{"three decimals", map[string]any{"descripcion": "x", "precio": 1.234}, "precio", "2 decimal places"},
		{"blank description", map[string]any{"descripcion": "  ", "precio": 1}, "descripcion", "is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/requests", mustJSON(tc.body), vendorSess)
			if err := h.Submit(c); err != nil {
				t.Fatalf("Submit error: %v", err)
			}
			if rec.Code != stdhttp.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", rec.Code)
			}
			if resp := decodeError(rec); !containsFieldMsg(resp.Details, tc.field, tc.msg) {
				t.Fatalf("details = %+v", resp.Details)
			}
		})
	}
}

func TestSubmit_BadJSON(t *testing.T) {
	e := newEchoWithValidator()
	h := newRequestHandler(&requestmock.Repo{}, &productmock.Repo{})
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/requests", mustJSON("not an object"), vendorSess)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestApprove_StatusMapping(t *testing.T) {
	pending := func(context.Context, uint64) (*domain.CodeRequest, error) {
		return &domain.CodeRequest{ID: 7, Status: domain.StatusPending, Submitter: "ana", Description: "Cable", Price: decimal.NewFromInt(500)}, nil
	}
	cases := []struct {
		name     string
		id       string
		body     map[string]any
		reqs     *requestmock.Repo
		prods    *productmock.Repo
		wantCode int
	}{
		{"ok", "7", map[string]any{"codigo": "TC-100"}, &requestmock.Repo{GetByIDFn: pending}, &productmock.Repo{}, stdhttp.StatusOK},
		{"bad id", "abc", map[string]any{"codigo": "TC-100"}, &requestmock.Repo{}, &productmock.Repo{}, stdhttp.StatusBadRequest},
		{"blank code", "7", map[string]any{"codigo": " "}, &requestmock.Repo{}, &productmock.Repo{}, stdhttp.StatusUnprocessableEntity},
		{"unknown id", "9", map[string]any{"codigo": "TC-100"}, &requestmock.Repo{GetByIDFn: func(context.Context, uint64) (*domain.CodeRequest, error) {
			return nil, domain.ErrNotFound
		}}, &productmock.Repo{}, stdhttp.StatusNotFound},
		{"already decided", "7", map[string]any{"codigo": "TC-100"}, &requestmock.Repo{GetByIDFn: func(context.Context, uint64) (*domain.CodeRequest, error) {
			return &domain.CodeRequest{ID: 7, Status: domain.StatusApproved}, nil
		}}, &productmock.Repo{}, stdhttp.StatusConflict},
		{"code taken", "7", map[string]any{"codigo": "TC-100"}, &requestmock.Repo{GetByIDFn: pending}, &productmock.Repo{
			ExistsByCodeFn: func(context.Context, string) (bool, error) { return true, nil },
		}, stdhttp.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEchoWithValidator()
			h := newRequestHandler(tc.reqs, tc.prods)
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/requests/"+tc.id+"/approve", mustJSON(tc.body), adminSess)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)
			if err := h.Approve(c); err != nil {
				t.Fatalf("Approve error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d; body=%s", rec.Code, tc.wantCode, rec.Body.String())
			}
			if tc.wantCode == stdhttp.StatusOK {
				var p product.Product
				if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil || p.Code != "TC-100" || p.CreatedBy != "ana" {
					t.Fatalf("unexpected product: %+v err=%v", p, err)
				}
			}
		})
	}
}

func TestReject_OK(t *testing.T) {
	e := newEchoWithValidator()
	reqs := &requestmock.Repo{GetByIDFn: func(context.Context, uint64) (*domain.CodeRequest, error) {
		return &domain.CodeRequest{ID: 3, Status: domain.StatusPending, Submitter: "ana"}, nil
	}}
	h := newRequestHandler(reqs, &productmock.Repo{})
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/requests/3/reject", mustJSON(map[string]any{"motivo": "Duplicado"}), adminSess)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.Reject(c); err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d; body=%s", rec.Code, rec.Body.String())
	}
	var got decisionResp
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID != 3 || got.Status != domain.StatusRejected {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestPending_ForbiddenForVendor_EmptyListForAdmin(t *testing.T) {
	e := newEchoWithValidator()
	reqs := &requestmock.Repo{ListByStatusFn: func(context.Context, domain.Status) ([]domain.CodeRequest, error) { return nil, nil }}
	h := newRequestHandler(reqs, &productmock.Repo{})

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/requests/pending", nil, vendorSess)
	_ = h.Pending(c)
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("vendor: status = %d, want 403", rec.Code)
	}

	c, rec = newCtx(e, stdhttp.MethodGet, "/api/requests/pending", nil, adminSess)
	_ = h.Pending(c)
	if rec.Code != stdhttp.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("admin: status = %d body=%q", rec.Code, rec.Body.String())
	}
}
