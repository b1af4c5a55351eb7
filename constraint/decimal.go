package constraint

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal is an exact decimal literal. Text keeps the literal as written so
// "200.00" round-trips unchanged.
type Decimal struct {
	Text  string
	Value *big.Rat
}

// ParseDecimal accepts the literals java.math.BigDecimal accepts: an
// optional sign, digits with an optional fraction, and an optional exponent.
func ParseDecimal(s string) (*Decimal, error) {
	text := strings.TrimSpace(s)
	if !isDecimalLiteral(text) {
		return nil, fmt.Errorf("invalid decimal literal %q", s)
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("invalid decimal literal %q", s)
	}
	return &Decimal{Text: text, Value: r}, nil
}

func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func decimalFromInt(v int64) *Decimal {
	return &Decimal{Text: fmt.Sprint(v), Value: new(big.Rat).SetInt64(v)}
}

// Float returns the nearest float64, as OpenAPI numbers are JSON numbers.
func (d *Decimal) Float() float64 {
	f, _ := d.Value.Float64()
	return f
}

func (d *Decimal) String() string { return d.Text }

func (d *Decimal) MarshalText() ([]byte, error) {
	return []byte(d.Text), nil
}

func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
