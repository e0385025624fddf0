package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

func TestCollectorAggregatesFailures(t *testing.T) {
	var v collector
	v.enum("sector", "Açougue", tracking.Sectors)
	v.date("date", "10/03/2025")
	v.positiveInt("daysAbsent", 0)

	err := v.result()
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)
	assert.Equal(t, "sector", verr.Fields[0].Field)
	assert.Equal(t, "date", verr.Fields[1].Field)
	assert.Equal(t, "daysAbsent", verr.Fields[2].Field)
}

func TestCollectorNoFailures(t *testing.T) {
	var v collector
	code := v.enum("sector", "paes", tracking.Sectors)
	assert.Equal(t, tracking.SectorPaes, code)
	assert.NoError(t, v.result())
}

func TestCollectorEnumMessageListsValues(t *testing.T) {
	var v collector
	v.enum("maintenanceType", "URGENTE", tracking.MaintenanceTypes)

	var verr *shared.ValidationError
	require.ErrorAs(t, v.result(), &verr)
	assert.Contains(t, verr.Fields[0].Message, "PREVENTIVA, CORRETIVA, PREDITIVA")
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, optionalText(nil))

	empty := "   "
	assert.Nil(t, optionalText(&empty))

	value := "  observação  "
	got := optionalText(&value)
	require.NotNil(t, got)
	assert.Equal(t, "observação", *got)
}
