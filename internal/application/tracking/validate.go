package tracking

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// collector accumulates per-field failures so one request reports every
// problem at once. Structural checks (required, max length) run earlier in
// the binding layer; the collector covers what binding tags cannot express:
// label canonicalization, date parsing and numeric sign rules.
type collector struct {
	err shared.ValidationError
}

func (c *collector) fail(field, message string) {
	c.err.Add(field, message)
}

// result returns the aggregated *shared.ValidationError, or nil
func (c *collector) result() error {
	if c.err.HasErrors() {
		return &c.err
	}
	return nil
}

// enum resolves a label against its canonicalization table
func (c *collector) enum(field, value string, table *tracking.Enum) string {
	code, ok := table.Canonicalize(value)
	if !ok {
		c.fail(field, "Must be one of: "+strings.Join(table.Values(), ", "))
		return ""
	}
	return code
}

// date parses a YYYY-MM-DD or RFC 3339 input
func (c *collector) date(field, value string) tracking.Date {
	d, err := tracking.ParseDate(value)
	if err != nil {
		c.fail(field, "Must be a YYYY-MM-DD date or an RFC 3339 timestamp")
	}
	return d
}

// positiveInt requires v >= 1
func (c *collector) positiveInt(field string, v int) int {
	if v < 1 {
		c.fail(field, "Must be greater than 0")
	}
	return v
}

// nonNegativeInt requires v >= 0
func (c *collector) nonNegativeInt(field string, v int) int {
	if v < 0 {
		c.fail(field, "Must be greater than or equal to 0")
	}
	return v
}

// positiveNumber converts a JSON number to decimal, requiring v > 0
func (c *collector) positiveNumber(field string, v float64) decimal.Decimal {
	d := decimal.NewFromFloat(v)
	if !d.IsPositive() {
		c.fail(field, "Must be greater than 0")
	}
	return d
}

// nonNegativeNumber converts a JSON number to decimal, requiring v >= 0
func (c *collector) nonNegativeNumber(field string, v float64) decimal.Decimal {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		c.fail(field, "Must be greater than or equal to 0")
	}
	return d
}

// optionalText trims an optional field, collapsing empty strings to absent
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
