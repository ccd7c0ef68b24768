package similarity

import (
	"context"
	"sort"
	"strings"

	"multisuministros-codes/internal/domain/product"
)

const (
	// DefaultTopN is the number of near-duplicates shown while drafting a request.
	DefaultTopN = 3
	// SearchLimit caps ranked search results.
	SearchLimit = 50
	// RecentLimit caps the unranked listing returned for an empty query.
	RecentLimit = 100
)

type Usecase struct{ products product.Repository }

func NewUsecase(products product.Repository) *Usecase { return &Usecase{products: products} }

// Similar ranks the catalog against a draft description.
func (u *Usecase) Similar(ctx context.Context, description string, topN int) ([]Match, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(description, toEntries(all), topN), nil
}

type SearchInput struct {
	Query    string
	Supplier string
}

// Search filters the catalog by supplier substring (case-insensitive) and
// ranks it against Query. A blank query lists the newest entries instead.
func (u *Usecase) Search(ctx context.Context, in SearchInput) ([]Match, error) {
	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s := strings.ToLower(strings.TrimSpace(in.Supplier)); s != "" {
		filtered := all[:0:0]
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.Supplier), s) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	if strings.TrimSpace(in.Query) == "" {
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
		if len(all) > RecentLimit {
			all = all[:RecentLimit]
		}
		out := make([]Match, 0, len(all))
		for _, e := range toEntries(all) {
			out = append(out, Match{Code: e.Code, Description: e.Description, Price: e.Price, Supplier: e.Supplier, CreatedAt: e.CreatedAt})
		}
		return out, nil
	}

	ranked := Rank(in.Query, toEntries(all), 0)
	if len(ranked) > SearchLimit {
		ranked = ranked[:SearchLimit]
	}
	return ranked, nil
}

func toEntries(ps []product.Product) []Entry {
	out := make([]Entry, 0, len(ps))
	for _, p := range ps {
		out = append(out, Entry{Code: p.Code, Description: p.Description, Price: p.Price, Supplier: p.Supplier, CreatedAt: p.CreatedAt})
	}
	return out
}
