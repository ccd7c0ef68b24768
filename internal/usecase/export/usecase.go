package export

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/usecase/access"
	"multisuministros-codes/pkg/session"
)

var header = []string{"codigo", "descripcion", "precio", "impuesto", "proveedor", "creado_por", "creado_en"}

type Usecase struct{ products product.Repository }

func NewUsecase(products product.Repository) *Usecase { return &Usecase{products: products} }

// CatalogCSV writes the full catalog to w, one row per product in insertion order.
func (u *Usecase) CatalogCSV(ctx context.Context, s session.Session, w io.Writer) error {
	if err := access.Require(s); err != nil {
		return err
	}
	all, err := u.products.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range all {
		if err := cw.Write([]string{
			p.Code,
			p.Description,
			p.Price.StringFixed(2),
			p.TaxRate.StringFixed(1),
			p.Supplier,
			p.CreatedBy,
			p.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
