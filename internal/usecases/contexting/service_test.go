package contexting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func creativeWithPerformance(id string, cpl *float64, ctr, cpm float64) *domain.Creative {
	return &domain.Creative{
		ID: id,
		Performance: &domain.PerformanceMetrics{
			CPL: cpl,
			CTR: ctr,
			CPM: cpm,
		},
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name     string
		a        *domain.PerformanceMetrics
		b        *domain.PerformanceMetrics
		expected bool
	}{
		{
			name:     "CPL menor vence",
			a:        &domain.PerformanceMetrics{CPL: floatPtr(10)},
			b:        &domain.PerformanceMetrics{CPL: floatPtr(20)},
			expected: true,
		},
		{
			name:     "Quem tem CPL vence quem não tem",
			a:        &domain.PerformanceMetrics{CPL: floatPtr(100), CTR: 0.1},
			b:        &domain.PerformanceMetrics{CTR: 9.9},
			expected: true,
		},
		{
			name:     "Sem CPL dos dois lados decide o CTR decrescente",
			a:        &domain.PerformanceMetrics{CTR: 3.0},
			b:        &domain.PerformanceMetrics{CTR: 1.0},
			expected: true,
		},
		{
			name:     "CPL empatado cai para o CTR",
			a:        &domain.PerformanceMetrics{CPL: floatPtr(10), CTR: 5.0},
			b:        &domain.PerformanceMetrics{CPL: floatPtr(10), CTR: 2.0},
			expected: true,
		},
		{
			name:     "Empate de CTR dentro do epsilon decide o CPM crescente",
			a:        &domain.PerformanceMetrics{CTR: 2.0005, CPM: 10},
			b:        &domain.PerformanceMetrics{CTR: 2.0, CPM: 30},
			expected: true,
		},
		{
			name:     "CPM ausente ordena por último no desempate",
			a:        &domain.PerformanceMetrics{CTR: 2.0, CPM: 80},
			b:        &domain.PerformanceMetrics{CTR: 2.0},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Less(tt.a, tt.b))
			// Strict weak ordering: a < b implica !(b < a)
			if tt.expected {
				assert.False(t, Less(tt.b, tt.a))
			}
		})
	}
}

func TestService_BuildContext_Truncamento(t *testing.T) {
	service := &Service{}

	// 20 criativos com performance (CPL crescente) e 10 sem
	creatives := make([]*domain.Creative, 0, 30)
	for i := 0; i < 20; i++ {
		creatives = append(creatives, creativeWithPerformance(
			fmt.Sprintf("PERF-%02d", i), floatPtr(float64(10+i)), 2.0, 50.0,
		))
	}
	for i := 0; i < 10; i++ {
		creatives = append(creatives, &domain.Creative{ID: fmt.Sprintf("NEW-%02d", i)})
	}

	result := service.BuildContext(creatives, 20)

	// ⌊20×0,7⌋ = 14 com performance + ⌊20×0,3⌋ = 6 sem
	assert.Len(t, result.Candidates, 20)
	assert.Equal(t, "PERF-00", result.Candidates[0].ID)
	assert.Equal(t, "PERF-13", result.Candidates[13].ID)
	assert.Equal(t, "NEW-00", result.Candidates[14].ID)
	assert.Equal(t, "NEW-05", result.Candidates[19].ID)

	// As estatísticas cobrem o conjunto completo, pré-truncamento
	assert.Equal(t, 20, result.Stats.WithPerformance)
	assert.Equal(t, 10, result.Stats.WithoutPerformance)
	assert.Equal(t, 10.0, *result.Stats.MinCPL)
	assert.Equal(t, 29.0, *result.Stats.MaxCPL)
}

func TestService_BuildContext_GruposNaoSePreenchem(t *testing.T) {
	service := &Service{}

	// Apenas 2 com performance: a cota dos sem performance continua ⌊10×0,3⌋=3
	creatives := []*domain.Creative{
		creativeWithPerformance("PERF-00", floatPtr(10), 2.0, 50.0),
		creativeWithPerformance("PERF-01", floatPtr(20), 2.0, 50.0),
		{ID: "NEW-00"},
		{ID: "NEW-01"},
		{ID: "NEW-02"},
		{ID: "NEW-03"},
	}

	result := service.BuildContext(creatives, 10)

	assert.Len(t, result.Candidates, 5)
	assert.Equal(t, "PERF-00", result.Candidates[0].ID)
	assert.Equal(t, "NEW-02", result.Candidates[4].ID)
}

func TestService_BuildContext_LimiteInvalidoUsaPadrao(t *testing.T) {
	service := &Service{}

	creatives := []*domain.Creative{creativeWithPerformance("PERF-00", floatPtr(10), 2.0, 50.0)}

	result := service.BuildContext(creatives, 0)

	assert.Len(t, result.Candidates, 1)
	assert.Equal(t, 1, result.Stats.WithPerformance)
}

func TestComputeStats(t *testing.T) {
	withPerformance := []*domain.Creative{
		creativeWithPerformance("A", floatPtr(10), 1.0, 40.0),
		creativeWithPerformance("B", floatPtr(30), 3.0, 60.0),
		creativeWithPerformance("C", nil, 2.0, 50.0),
	}

	stats := ComputeStats(withPerformance, 4)

	assert.Equal(t, 3, stats.WithPerformance)
	assert.Equal(t, 4, stats.WithoutPerformance)
	assert.Equal(t, 10.0, *stats.MinCPL)
	assert.Equal(t, 30.0, *stats.MaxCPL)
	assert.Equal(t, 20.0, *stats.MeanCPL)
	assert.Equal(t, 50.0, *stats.MeanCPM)

	// A "mediana" é o elemento no índice ⌊n/2⌋ do array ordenado
	assert.Equal(t, 2.0, *stats.MedianCTR)
}

func TestComputeStats_SemPerformance(t *testing.T) {
	stats := ComputeStats(nil, 3)

	assert.Equal(t, 0, stats.WithPerformance)
	assert.Equal(t, 3, stats.WithoutPerformance)
	assert.Nil(t, stats.MedianCTR)
	assert.Nil(t, stats.MeanCPM)
	assert.Nil(t, stats.MeanCPL)
	assert.Nil(t, stats.MinCPL)
	assert.Nil(t, stats.MaxCPL)
}
