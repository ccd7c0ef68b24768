package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/testutil/productmock"
	"multisuministros-codes/pkg/session"
)

var ana = session.Session{UserID: 2, Username: "ana", Role: "vendedor", IsAuthenticated: true}

func TestCatalogCSV(t *testing.T) {
	at := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
	uc := NewUsecase(&productmock.Repo{ListAllFn: func(context.Context) ([]product.Product, error) {
		return []product.Product{
			{Code: "TC-100", Description: "Cable USB-C 1m", Price: decimal.NewFromInt(500), TaxRate: product.StandardTaxRate, Supplier: "TechCR", CreatedBy: "ana", CreatedAt: at},
			{Code: "Q-1", Description: `Tornillo 1/4", caja`, Price: decimal.RequireFromString("1.5"), TaxRate: product.StandardTaxRate, CreatedBy: "ana", CreatedAt: at},
		}, nil
	}})

	var buf bytes.Buffer
	if err := uc.CatalogCSV(context.Background(), ana, &buf); err != nil {
		t.Fatalf("CatalogCSV err: %v", err)
	}
	want := "codigo,descripcion,precio,impuesto,proveedor,creado_por,creado_en\n" +
		"TC-100,Cable USB-C 1m,500.00,13.0,TechCR,ana,2025-09-06T10:00:00Z\n" +
		"Q-1,\"Tornillo 1/4\"\", caja\",1.50,13.0,,ana,2025-09-06T10:00:00Z\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestCatalogCSV_EmptyCatalogHasHeader(t *testing.T) {
	uc := NewUsecase(&productmock.Repo{})
	var buf bytes.Buffer
	if err := uc.CatalogCSV(context.Background(), ana, &buf); err != nil {
		t.Fatalf("CatalogCSV err: %v", err)
	}
	if buf.String() != "codigo,descripcion,precio,impuesto,proveedor,creado_por,creado_en\n" {
		t.Fatalf("unexpected csv: %q", buf.String())
	}
}

func TestCatalogCSV_Errors(t *testing.T) {
	if err := NewUsecase(&productmock.Repo{}).CatalogCSV(context.Background(), session.Session{}, &bytes.Buffer{}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("anonymous: want unauthorized, got %v", err)
	}
	boom := errors.New("db down")
	uc := NewUsecase(&productmock.Repo{ListAllFn: func(context.Context) ([]product.Product, error) { return nil, boom }})
	if err := uc.CatalogCSV(context.Background(), ana, &bytes.Buffer{}); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
}
