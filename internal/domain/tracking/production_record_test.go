package tracking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeUnitsPerHour(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		minutes  int
		want     string
	}{
		{"one hour run", "120", 60, "120"},
		{"half hour run", "100", 30, "200"},
		{"ninety minutes", "300", 90, "200"},
		{"rounds to three places", "100", 7, "857.143"},
		{"zero duration", "50", 0, "0"},
		{"negative duration", "50", -10, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeUnitsPerHour(decimal.RequireFromString(tt.quantity), tt.minutes)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestAuditSnapshotIsSubset(t *testing.T) {
	operator := "Marcos"
	record := ProductionRecord{
		ID:               7,
		Sector:           SectorPaes,
		Product:          "Pão francês",
		Machine:          "Forno 2",
		QuantityProduced: decimal.NewFromInt(500),
		DurationMinutes:  120,
		Operator:         &operator,
	}

	snap := record.AuditSnapshot()
	assert.Equal(t, SectorPaes, snap["sector"])
	assert.Equal(t, "Forno 2", snap["machine"])
	assert.NotContains(t, snap, "operator")
	assert.NotContains(t, snap, "duration_minutes")
}
