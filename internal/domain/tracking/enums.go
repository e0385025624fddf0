package tracking

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks so that accented and unaccented
// spellings share one lookup key.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// canonicalKey normalizes a human-facing label into the lookup-key form:
// diacritics stripped, upper-cased, interior whitespace and hyphens collapsed
// to single underscores.
func canonicalKey(input string) string {
	out, _, err := transform.String(stripDiacritics, input)
	if err != nil {
		out = input
	}
	out = strings.ToUpper(strings.TrimSpace(out))
	out = strings.ReplaceAll(out, "-", " ")
	return strings.Join(strings.Fields(out), "_")
}

// Enum is a canonicalization table for one enumerated domain concept.
// Every accepted spelling resolves to exactly one canonical code; lookups
// that miss the table are validation failures, never passed through.
type Enum struct {
	name      string
	canonical []string
	lookup    map[string]string
}

// NewEnum builds an enum from its canonical codes plus extra accepted
// spellings (alias -> canonical code). Canonical codes accept themselves and
// any spelling that normalizes to them.
func NewEnum(name string, canonical []string, aliases map[string]string) *Enum {
	e := &Enum{
		name:      name,
		canonical: canonical,
		lookup:    make(map[string]string, len(canonical)+len(aliases)),
	}
	for _, code := range canonical {
		e.lookup[canonicalKey(code)] = code
	}
	for alias, code := range aliases {
		e.lookup[canonicalKey(alias)] = code
	}
	return e
}

// Name returns the enum's domain-concept name
func (e *Enum) Name() string {
	return e.name
}

// Values returns the canonical codes in declaration order
func (e *Enum) Values() []string {
	return e.canonical
}

// Canonicalize resolves an input spelling to its canonical code.
// The second return value is false when the input is not in the table.
func (e *Enum) Canonicalize(input string) (string, bool) {
	code, ok := e.lookup[canonicalKey(input)]
	return code, ok
}

// Sector codes
const (
	SectorConfeitaria = "CONFEITARIA"
	SectorPaes        = "PAES"
	SectorSalgado     = "SALGADO"
	SectorPaoDeQueijo = "PAO_DE_QUEIJO"
	SectorEmbaladora  = "EMBALADORA"
	SectorManutencao  = "MANUTENCAO"
)

// Sectors maps every accepted sector spelling (Portuguese display labels,
// with or without diacritics, legacy plurals) to one canonical code.
var Sectors = NewEnum("sector",
	[]string{
		SectorConfeitaria,
		SectorPaes,
		SectorSalgado,
		SectorPaoDeQueijo,
		SectorEmbaladora,
		SectorManutencao,
	},
	map[string]string{
		"Pão":         SectorPaes,
		"Pães":        SectorPaes,
		"Padaria":     SectorPaes,
		"Salgados":    SectorSalgado,
		"Embalagem":   SectorEmbaladora,
		"Confeiteira": SectorConfeitaria,
	},
)

// AbsenceTypes canonicalizes absenteeism classification labels.
var AbsenceTypes = NewEnum("absence_type",
	[]string{
		"FALTA_INJUSTIFICADA",
		"FALTA_JUSTIFICADA",
		"ATESTADO",
		"FERIAS",
		"LICENCA",
		"SUSPENSAO",
	},
	map[string]string{
		"Atestado Médico": "ATESTADO",
		"Atestado Medico": "ATESTADO",
		"Falta":           "FALTA_INJUSTIFICADA",
		"Licença Médica":  "LICENCA",
		"Férias":          "FERIAS",
	},
)

// LossTypes canonicalizes production-loss classification labels.
var LossTypes = NewEnum("loss_type",
	[]string{
		"MASSA",
		"RECHEIO",
		"PRODUTO_ACABADO",
		"EMBALAGEM",
		"MATERIA_PRIMA",
	},
	map[string]string{
		"Matéria Prima":  "MATERIA_PRIMA",
		"Matéria-Prima":  "MATERIA_PRIMA",
		"Produto Pronto": "PRODUTO_ACABADO",
	},
)

// ErrorCategories canonicalizes production-error classification labels.
var ErrorCategories = NewEnum("category",
	[]string{
		"PRODUCAO",
		"QUALIDADE",
		"EMBALAGEM",
		"ARMAZENAMENTO",
		"EXPEDICAO",
	},
	map[string]string{
		"Produção":    "PRODUCAO",
		"Expedição":   "EXPEDICAO",
		"Armazenagem": "ARMAZENAMENTO",
	},
)

// MaintenanceTypes canonicalizes maintenance-event classification labels.
var MaintenanceTypes = NewEnum("maintenance_type",
	[]string{
		"PREVENTIVA",
		"CORRETIVA",
		"PREDITIVA",
	},
	map[string]string{
		"Manutenção Preventiva": "PREVENTIVA",
		"Manutenção Corretiva":  "CORRETIVA",
	},
)
