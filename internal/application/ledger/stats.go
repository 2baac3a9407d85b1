package ledger

import (
	"sort"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TopProducts tamaño del ranking de GET /records/stats.
const TopProducts = 5

// AggregateStats calcula las estadísticas del ledger en memoria, para stores sin
// agregaciones nativas. Agrupa por ProductID, ordena por cantidad sumada desc y
// desempata por ProductID asc. name resuelve el nombre actual del producto; si
// devuelve "" se usa la instantánea del registro.
func AggregateStats(records []*entity.Record, name func(productID string) string, topN int) *repository.RecordStats {
	stats := &repository.RecordStats{TotalCredits: decimal.Zero}
	groups := make(map[string]*repository.ProductRanking)
	snapshot := make(map[string]string)

	for _, r := range records {
		stats.TotalRecords++
		stats.TotalCredits = stats.TotalCredits.Add(r.TotalCredits)

		g, ok := groups[r.ProductID]
		if !ok {
			g = &repository.ProductRanking{ProductID: r.ProductID, TotalCredits: decimal.Zero}
			groups[r.ProductID] = g
		}
		g.TotalQuantity += r.Quantity
		g.TotalCredits = g.TotalCredits.Add(r.TotalCredits)
		g.Count++
		snapshot[r.ProductID] = r.ProductName
	}

	ranking := make([]repository.ProductRanking, 0, len(groups))
	for id, g := range groups {
		g.Name = snapshot[id]
		if name != nil {
			if current := name(id); current != "" {
				g.Name = current
			}
		}
		ranking = append(ranking, *g)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalQuantity != ranking[j].TotalQuantity {
			return ranking[i].TotalQuantity > ranking[j].TotalQuantity
		}
		return ranking[i].ProductID < ranking[j].ProductID
	})
	if topN >= 0 && len(ranking) > topN {
		ranking = ranking[:topN]
	}
	stats.TopProducts = ranking
	return stats
}
