package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one catalog row offered to the ranker.
type Entry struct {
	Code        string
	Description string
	Price       decimal.Decimal
	Supplier    string
	CreatedAt   time.Time
}

// Match is an Entry with its cosine similarity to the query.
type Match struct {
	Code        string          `json:"codigo"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Supplier    string          `json:"proveedor"`
	CreatedAt   time.Time       `json:"creado_en"`
	Score       float64         `json:"score"`
}

// Tokens are runs of two or more letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// term is one non-zero weight of a row; rows are kept sorted by idx so sums
// run in the same order on every call.
type term struct {
	idx int
	w   float64
}

type sparseVec []term

// vectorize fits a TF-IDF space over docs and returns one L2-normalized row
// per doc. Weights are raw counts times the smoothed idf ln((1+n)/(1+df))+1.
func vectorize(docs []string) []sparseVec {
	vocab := make(map[string]int)
	counts := make([]map[int]int, len(docs))
	df := make(map[int]int)

	for i, d := range docs {
		counts[i] = make(map[int]int)
		for _, tok := range tokenize(d) {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
			}
			if counts[i][idx] == 0 {
				df[idx]++
			}
			counts[i][idx]++
		}
	}

	n := float64(len(docs))
	rows := make([]sparseVec, len(docs))
	for i, c := range counts {
		row := make(sparseVec, 0, len(c))
		for idx, tf := range c {
			row = append(row, term{idx: idx, w: float64(tf) * (math.Log((1+n)/(1+float64(df[idx]))) + 1)})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].idx < row[b].idx })

		var norm float64
		for _, t := range row {
			norm += t.w * t.w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for k := range row {
				row[k].w /= norm
			}
		}
		rows[i] = row
	}
	return rows
}

// dot merges two index-sorted rows.
func dot(a, b sparseVec) float64 {
	var sum float64
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i].idx < b[j].idx:
			i++
		case a[i].idx > b[j].idx:
			j++
		default:
			sum += a[i].w * b[j].w
			i++
			j++
		}
	}
	return sum
}

// Rank scores query against every corpus entry and returns the best topN,
// highest score first. Equal scores keep corpus order. topN <= 0 returns the
// whole corpus sorted.
func Rank(query string, corpus []Entry, topN int) []Match {
	if len(corpus) == 0 {
		return []Match{}
	}

	docs := make([]string, 0, len(corpus)+1)
	for _, e := range corpus {
		docs = append(docs, e.Description)
	}
	docs = append(docs, query)
	rows := vectorize(docs)
	q := rows[len(rows)-1]

	out := make([]Match, len(corpus))
	for i, e := range corpus {
		out[i] = Match{
			Code:        e.Code,
			Description: e.Description,
			Price:       e.Price,
			Supplier:    e.Supplier,
			CreatedAt:   e.CreatedAt,
			Score:       dot(q, rows[i]),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}
