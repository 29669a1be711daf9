package contexting

import (
	"math"
	"sort"

	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/pkg/utils"
)

// Empate de CTR: diferenças de até 0.001 ponto percentual contam como iguais
const ctrTieEpsilon = 0.001

// Sentinela para CPM ausente, de modo que ordene por último no desempate
const missingCPMSentinel = math.MaxFloat64

// DefaultContextLimit é o orçamento padrão de criativos no contexto
const DefaultContextLimit = 20

// RankedContext é o resultado do ranqueamento: a lista limitada de candidatos
// e as estatísticas calculadas sobre o conjunto completo, pré-truncamento
type RankedContext struct {
	Candidates []*domain.Creative
	Stats      *domain.ContextStats
}

// Ranker ordena e trunca criativos para o contexto de decisão. Função pura
// das entradas; sem efeitos colaterais
type Ranker interface {
	BuildContext(creatives []*domain.Creative, limit int) *RankedContext
}

type Service struct{}

func NewService() Ranker {
	return &Service{}
}

// BuildContext separa criativos com e sem performance, ordena os que têm pela
// cadeia CPL > CTR > CPM, calcula as estatísticas do conjunto completo e
// trunca em ⌊limit×0,7⌋ com performance + ⌊limit×0,3⌋ sem, sem preencher um
// grupo com o outro
func (s *Service) BuildContext(creatives []*domain.Creative, limit int) *RankedContext {
	if limit <= 0 {
		limit = DefaultContextLimit
	}

	withPerformance := make([]*domain.Creative, 0, len(creatives))
	withoutPerformance := make([]*domain.Creative, 0)
	for _, creative := range creatives {
		if creative.HasPerformance() {
			withPerformance = append(withPerformance, creative)
		} else {
			withoutPerformance = append(withoutPerformance, creative)
		}
	}

	ranked := make([]*domain.Creative, len(withPerformance))
	copy(ranked, withPerformance)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[i].Performance, ranked[j].Performance)
	})

	stats := ComputeStats(withPerformance, len(withoutPerformance))

	performanceShare := int(math.Floor(float64(limit) * 0.7))
	newShare := int(math.Floor(float64(limit) * 0.3))

	if len(ranked) > performanceShare {
		ranked = ranked[:performanceShare]
	}

	// Sem performance mantêm a ordem original de entrada
	if len(withoutPerformance) > newShare {
		withoutPerformance = withoutPerformance[:newShare]
	}

	candidates := make([]*domain.Creative, 0, len(ranked)+len(withoutPerformance))
	candidates = append(candidates, ranked...)
	candidates = append(candidates, withoutPerformance...)

	return &RankedContext{
		Candidates: candidates,
		Stats:      stats,
	}
}

// Less é o comparador de ranqueamento: CPL definido menor primeiro; quem tem
// CPL vence quem não tem; depois CTR decrescente com empate de ±0.001; por
// fim CPM crescente com sentinela para ausentes. É uma strict weak ordering
func Less(a, b *domain.PerformanceMetrics) bool {
	switch {
	case a.HasCPL() && b.HasCPL():
		if *a.CPL != *b.CPL {
			return *a.CPL < *b.CPL
		}
	case a.HasCPL():
		return true
	case b.HasCPL():
		return false
	}

	if math.Abs(a.CTR-b.CTR) > ctrTieEpsilon {
		return a.CTR > b.CTR
	}

	return cpmOrSentinel(a) < cpmOrSentinel(b)
}

func cpmOrSentinel(m *domain.PerformanceMetrics) float64 {
	if m.CPM == 0 {
		return missingCPMSentinel
	}
	return m.CPM
}

// ComputeStats calcula as estatísticas agregadas sobre todos os criativos com
// performance, antes de qualquer truncamento. A "mediana" de CTR é o elemento
// no índice ⌊n/2⌋ do array ordenado; para n par não é a mediana verdadeira,
// mantido assim de propósito
func ComputeStats(withPerformance []*domain.Creative, withoutCount int) *domain.ContextStats {
	stats := &domain.ContextStats{
		WithPerformance:    len(withPerformance),
		WithoutPerformance: withoutCount,
	}

	if len(withPerformance) == 0 {
		return stats
	}

	ctrs := make([]float64, 0, len(withPerformance))
	var cpmSum float64
	var cplSum float64
	cplCount := 0

	for _, creative := range withPerformance {
		performance := creative.Performance
		ctrs = append(ctrs, performance.CTR)
		cpmSum += performance.CPM

		if !performance.HasCPL() {
			continue
		}

		cpl := *performance.CPL
		cplSum += cpl
		cplCount++

		if stats.MinCPL == nil || cpl < *stats.MinCPL {
			stats.MinCPL = ptr(cpl)
		}
		if stats.MaxCPL == nil || cpl > *stats.MaxCPL {
			stats.MaxCPL = ptr(cpl)
		}
	}

	sort.Float64s(ctrs)
	stats.MedianCTR = ptr(ctrs[len(ctrs)/2])
	stats.MeanCPM = ptr(utils.RoundWithTwoDecimalPlace(cpmSum / float64(len(withPerformance))))

	if cplCount > 0 {
		stats.MeanCPL = ptr(utils.RoundWithTwoDecimalPlace(cplSum / float64(cplCount)))
	}

	return stats
}

func ptr(f float64) *float64 {
	return &f
}
