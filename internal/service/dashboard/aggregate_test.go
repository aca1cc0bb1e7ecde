package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

func entry(id int64, p domain.Phase, d domain.Domain, t domain.LogType) domain.LogEntry {
	return domain.LogEntry{ID: id, Phase: p, Domain: d, LogType: t}
}

func sampleEntries() []domain.LogEntry {
	return []domain.LogEntry{
		entry(1, domain.PhaseWS, domain.DomainSWAlgo, domain.LogTypeBug),
		entry(2, domain.PhaseWS, domain.DomainOpticsARK, domain.LogTypeAlignment),
		entry(3, domain.PhaseES, domain.DomainOpticsLM, domain.LogTypeCalibration),
		entry(4, domain.PhasePT, domain.DomainProjectCommon, domain.LogTypeMeeting),
		entry(5, domain.PhaseWS, domain.DomainHWBoard, domain.LogTypeBug),
		entry(6, domain.PhaseMP, domain.DomainMechMoving, domain.LogTypeDecision),
	}
}

func ids(entries []domain.LogEntry) []int64 {
	out := make([]int64, len(entries))
	for i := range entries {
		out[i] = entries[i].ID
	}
	return out
}

func TestFilterEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sel  Selection
		want []int64
	}{
		{"all", Selection{}, []int64{1, 2, 3, 4, 5, 6}},
		{"phase", Selection{Phase: domain.PhaseWS}, []int64{1, 2, 5}},
		{"category compares derived value", Selection{Category: domain.CategoryOptics}, []int64{2, 3}},
		{"log type", Selection{LogType: domain.LogTypeBug}, []int64{1, 5}},
		{"combined", Selection{Phase: domain.PhaseWS, LogType: domain.LogTypeBug, Category: domain.CategoryHW}, []int64{5}},
		{"no match", Selection{Phase: domain.PhasePP}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ids(FilterEntries(sampleEntries(), tt.sel))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterEntries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	got := ComputeStats(sampleEntries())

	want := Stats{
		Total:     6,
		Alignment: 1,
		Bug:       2,
		Decision:  1,
		Meeting:   1,
		ByPhase: map[domain.Phase]int{
			domain.PhasePlanning: 0, domain.PhaseWS: 3, domain.PhasePT: 1,
			domain.PhaseES: 1, domain.PhasePP: 0, domain.PhaseMP: 1,
		},
		ByCategory: map[domain.DomainCategory]int{
			domain.CategoryOptics: 2, domain.CategoryMech: 1, domain.CategoryHW: 1,
			domain.CategorySW: 1, domain.CategoryCommon: 1,
		},
		ByDomain: map[domain.Domain]int{
			domain.DomainSWAlgo: 1, domain.DomainOpticsARK: 1, domain.DomainOpticsLM: 1,
			domain.DomainProjectCommon: 1, domain.DomainHWBoard: 1, domain.DomainMechMoving: 1,
		},
		ByLogType: map[domain.LogType]int{
			domain.LogTypeBug: 2, domain.LogTypeAlignment: 1, domain.LogTypeCalibration: 1,
			domain.LogTypeMeeting: 1, domain.LogTypeDecision: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeStats mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStats_SumsMatchTotal(t *testing.T) {
	t.Parallel()

	got := ComputeStats(sampleEntries())

	sumPhase, sumCat := 0, 0
	for _, n := range got.ByPhase {
		sumPhase += n
	}
	for _, n := range got.ByCategory {
		sumCat += n
	}
	if sumPhase != got.Total || sumCat != got.Total {
		t.Errorf("sums: phase %d, category %d, total %d", sumPhase, sumCat, got.Total)
	}
}

func TestComputeStats_NewBugIncrementsOnce(t *testing.T) {
	t.Parallel()

	before := ComputeStats(sampleEntries())
	after := ComputeStats(append(sampleEntries(), entry(7, domain.PhaseWS, domain.DomainSWAlgo, domain.LogTypeBug)))

	if after.Bug-before.Bug != 1 {
		t.Errorf("bug delta: got %d, want 1", after.Bug-before.Bug)
	}
	if after.ByPhase[domain.PhaseWS]-before.ByPhase[domain.PhaseWS] != 1 {
		t.Errorf("WS delta: got %d, want 1", after.ByPhase[domain.PhaseWS]-before.ByPhase[domain.PhaseWS])
	}
}

func TestComputeStats_Empty(t *testing.T) {
	t.Parallel()

	got := ComputeStats(nil)
	if got.Total != 0 || len(got.ByPhase) != len(domain.Phases()) {
		t.Errorf("empty stats: got %+v", got)
	}
}
