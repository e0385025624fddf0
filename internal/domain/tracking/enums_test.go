package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectorCanonicalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Pães", SectorPaes},
		{"paes", SectorPaes},
		{"PÃES", SectorPaes},
		{"Pão", SectorPaes},
		{"Padaria", SectorPaes},
		{"Confeitaria", SectorConfeitaria},
		{"confeitaria", SectorConfeitaria},
		{"Pão de Queijo", SectorPaoDeQueijo},
		{"pao-de-queijo", SectorPaoDeQueijo},
		{"PAO_DE_QUEIJO", SectorPaoDeQueijo},
		{"Salgados", SectorSalgado},
		{"Embalagem", SectorEmbaladora},
		{"Manutenção", SectorManutencao},
		{"  Paes  ", SectorPaes},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Sectors.Canonicalize(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalizationRejectsUnknownLabels(t *testing.T) {
	for _, input := range []string{"", "Cozinha", "PAE", "Pães e Bolos"} {
		_, ok := Sectors.Canonicalize(input)
		assert.False(t, ok, "input %q should not resolve", input)
	}
}

func TestAbsenceTypeAliases(t *testing.T) {
	got, ok := AbsenceTypes.Canonicalize("Atestado Médico")
	assert.True(t, ok)
	assert.Equal(t, "ATESTADO", got)

	got, ok = AbsenceTypes.Canonicalize("atestado medico")
	assert.True(t, ok)
	assert.Equal(t, "ATESTADO", got)

	got, ok = AbsenceTypes.Canonicalize("Férias")
	assert.True(t, ok)
	assert.Equal(t, "FERIAS", got)
}

func TestLossTypeAliases(t *testing.T) {
	got, ok := LossTypes.Canonicalize("Matéria-Prima")
	assert.True(t, ok)
	assert.Equal(t, "MATERIA_PRIMA", got)

	got, ok = LossTypes.Canonicalize("Produto Pronto")
	assert.True(t, ok)
	assert.Equal(t, "PRODUTO_ACABADO", got)
}

func TestErrorCategoryAliases(t *testing.T) {
	got, ok := ErrorCategories.Canonicalize("Produção")
	assert.True(t, ok)
	assert.Equal(t, "PRODUCAO", got)

	got, ok = ErrorCategories.Canonicalize("Expedicao")
	assert.True(t, ok)
	assert.Equal(t, "EXPEDICAO", got)
}

func TestMaintenanceTypeAliases(t *testing.T) {
	got, ok := MaintenanceTypes.Canonicalize("Manutenção Preventiva")
	assert.True(t, ok)
	assert.Equal(t, "PREVENTIVA", got)

	got, ok = MaintenanceTypes.Canonicalize("corretiva")
	assert.True(t, ok)
	assert.Equal(t, "CORRETIVA", got)
}

func TestEnumValuesOrder(t *testing.T) {
	assert.Equal(t, []string{
		SectorConfeitaria,
		SectorPaes,
		SectorSalgado,
		SectorPaoDeQueijo,
		SectorEmbaladora,
		SectorManutencao,
	}, Sectors.Values())
	assert.Equal(t, "sector", Sectors.Name())
}
