// Package constraint reads Bean Validation annotations into schema facets.
package constraint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/java"
)

var log = commonlog.GetLogger("beanscan.constraint")

// maxDigits caps @Digits counts; larger values drop the facet.
const maxDigits = 1000

const (
	validationPackage = "validation.constraints"
	defaultGroup      = "validation.groups.Default"
	jsonProperty      = "com.fasterxml.jackson.annotation.JsonProperty"
)

var (
	notNull        = variants("NotNull")
	notEmpty       = variants("NotEmpty")
	notBlank       = variants("NotBlank")
	size           = variants("Size")
	minimum        = variants("Min")
	maximum        = variants("Max")
	decimalMin     = variants("DecimalMin")
	decimalMax     = variants("DecimalMax")
	digits         = variants("Digits")
	positive       = variants("Positive")
	positiveOrZero = variants("PositiveOrZero")
	negative       = variants("Negative")
	negativeOrZero = variants("NegativeOrZero")
	pattern        = variants("Pattern")
)

func variants(simple string) []string {
	return []string{
		"javax." + validationPackage + "." + simple,
		"jakarta." + validationPackage + "." + simple,
	}
}

// Facets are the schema restrictions implied by a property's annotations.
// Nil pointers are unset.
type Facets struct {
	Required         *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength        *int64   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength        *int64   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems         *int64   `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems         *int64   `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinProperties    *int64   `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties    *int64   `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`
	Minimum          *Decimal `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *Decimal `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

func (f *Facets) IsZero() bool {
	return f == nil || *f == Facets{}
}

// IsRequired reports an explicit or implied required flag.
func (f *Facets) IsRequired() bool {
	return f != nil && f.Required != nil && *f.Required
}

// Extract reads the facets of a property of type t from the annotation lists
// of its members, most authoritative first. A facet set by an earlier list is
// never overwritten by a later one. Malformed literals drop only the facet
// they belong to.
func Extract(t *java.Type, members ...[]java.AnnotationModel) Facets {
	var f Facets
	kind := KindOf(t)
	for _, anns := range members {
		f.apply(kind, anns)
	}
	return f
}

func (f *Facets) apply(kind Kind, anns []java.AnnotationModel) {
	if s := java.FindAnnotation(anns, binding.SchemaAnnotation); s != nil && f.Required == nil {
		if required, ok := s.Bool("required"); ok {
			f.Required = &required
		}
	}
	if p := java.FindAnnotation(anns, jsonProperty); p != nil && f.Required == nil {
		if required, _ := p.Bool("required"); required {
			f.Required = &required
		}
	}
	if a := active(anns, notNull); a != nil && f.Required == nil {
		required := true
		f.Required = &required
	}

	if a := active(anns, size); a != nil {
		sizeMin, hasMin := a.Int("min")
		sizeMax, hasMax := a.Int("max")
		lo, hi := f.bounds(kind)
		if lo == nil {
			log.Debugf("ignoring @Size on %s property", kind)
		} else {
			if hasMin && sizeMin > 0 {
				setInt(lo, sizeMin)
			}
			if hasMax && sizeMax != maxInt32 {
				setInt(hi, sizeMax)
			}
		}
	}
	if a := active(anns, notEmpty); a != nil {
		if lo, _ := f.bounds(kind); lo != nil {
			setInt(lo, 1)
		}
	}
	if a := active(anns, notBlank); a != nil && kind == KindString {
		setInt(&f.MinLength, 1)
		if f.Pattern == "" {
			f.Pattern = `\S`
		}
	}

	if kind == KindNumber {
		f.applyNumeric(anns)
	}
	if a := active(anns, digits); a != nil {
		f.applyDigits(kind, a)
	}
	if a := active(anns, pattern); a != nil && f.Pattern == "" {
		if re, ok := a.String("regexp"); ok {
			f.Pattern = re
		}
	}
}

const maxInt32 = 1<<31 - 1

func (f *Facets) bounds(kind Kind) (lo, hi **int64) {
	switch kind {
	case KindString:
		return &f.MinLength, &f.MaxLength
	case KindArray:
		return &f.MinItems, &f.MaxItems
	case KindMap:
		return &f.MinProperties, &f.MaxProperties
	}
	return nil, nil
}

func setInt(dst **int64, v int64) {
	if *dst == nil {
		*dst = &v
	}
}

func (f *Facets) applyNumeric(anns []java.AnnotationModel) {
	if a := active(anns, minimum); a != nil {
		if v, ok := a.Int("value"); ok {
			f.setMinimum(decimalFromInt(v), false)
		}
	}
	if a := active(anns, maximum); a != nil {
		if v, ok := a.Int("value"); ok {
			f.setMaximum(decimalFromInt(v), false)
		}
	}
	if a := active(anns, decimalMin); a != nil {
		if d, exclusive, ok := decimalBound(a); ok {
			f.setMinimum(d, exclusive)
		}
	}
	if a := active(anns, decimalMax); a != nil {
		if d, exclusive, ok := decimalBound(a); ok {
			f.setMaximum(d, exclusive)
		}
	}
	if active(anns, positive) != nil {
		f.setMinimum(decimalFromInt(0), true)
	}
	if active(anns, positiveOrZero) != nil {
		f.setMinimum(decimalFromInt(0), false)
	}
	if active(anns, negative) != nil {
		f.setMaximum(decimalFromInt(0), true)
	}
	if active(anns, negativeOrZero) != nil {
		f.setMaximum(decimalFromInt(0), false)
	}
}

func (f *Facets) setMinimum(d *Decimal, exclusive bool) {
	if f.Minimum == nil {
		f.Minimum = d
		f.ExclusiveMinimum = exclusive
	}
}

func (f *Facets) setMaximum(d *Decimal, exclusive bool) {
	if f.Maximum == nil {
		f.Maximum = d
		f.ExclusiveMaximum = exclusive
	}
}

func decimalBound(a *java.AnnotationModel) (*Decimal, bool, bool) {
	text, ok := a.String("value")
	if !ok {
		return nil, false, false
	}
	d, err := ParseDecimal(text)
	if err != nil {
		log.Debugf("dropping @%s facet: %s", simpleName(a.Type), err)
		return nil, false, false
	}
	inclusive := true
	if v, ok := a.Bool("inclusive"); ok {
		inclusive = v
	}
	return d, !inclusive, true
}

// applyDigits bounds numbers by the largest value with the given digit counts
// and restricts numeric strings with a pattern.
func (f *Facets) applyDigits(kind Kind, a *java.AnnotationModel) {
	integer, ok := a.Int("integer")
	if !ok || integer < 0 {
		return
	}
	fraction, _ := a.Int("fraction")
	if fraction < 0 {
		fraction = 0
	}
	if integer > maxDigits || fraction > maxDigits {
		log.Debugf("dropping @%s facet: integer=%d fraction=%d exceeds %d digits", simpleName(a.Type), integer, fraction, maxDigits)
		return
	}
	switch kind {
	case KindNumber:
		upper := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(integer), nil))
		step := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(big.NewInt(10), big.NewInt(fraction), nil))
		upper.Sub(upper, step)
		lower := new(big.Rat).Neg(upper)
		f.setMaximum(&Decimal{Text: upper.FloatString(int(fraction)), Value: upper}, false)
		f.setMinimum(&Decimal{Text: lower.FloatString(int(fraction)), Value: lower}, false)
	case KindString:
		if f.Pattern != "" {
			return
		}
		if fraction > 0 {
			f.Pattern = fmt.Sprintf(`^\d{1,%d}([.]\d{1,%d})?$`, integer, fraction)
		} else {
			f.Pattern = fmt.Sprintf(`^\d{1,%d}$`, integer)
		}
	}
}

// Annotated reports whether anns carry any Bean Validation constraint.
func Annotated(anns []java.AnnotationModel) bool {
	for _, a := range anns {
		if strings.HasPrefix(a.Type, "javax."+validationPackage+".") ||
			strings.HasPrefix(a.Type, "jakarta."+validationPackage+".") {
			return true
		}
	}
	return false
}

// active finds the first of names in anns that applies to the default
// validation group.
func active(anns []java.AnnotationModel, names []string) *java.AnnotationModel {
	a := java.FindAnnotation(anns, names...)
	if a == nil {
		return nil
	}
	groups := classValues(a, "groups")
	if len(groups) == 0 {
		return a
	}
	for _, g := range groups {
		if strings.HasSuffix(g, defaultGroup) {
			return a
		}
	}
	log.Debugf("skipping @%s outside the default group", simpleName(a.Type))
	return nil
}

func classValues(a *java.AnnotationModel, name string) []string {
	v, ok := a.Value(name)
	if !ok {
		return nil
	}
	var out []string
	switch v := v.(type) {
	case java.ClassValue:
		out = append(out, string(v))
	case []interface{}:
		for _, item := range v {
			switch item := item.(type) {
			case java.ClassValue:
				out = append(out, string(item))
			case string:
				out = append(out, item)
			}
		}
	}
	return out
}

func simpleName(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}
