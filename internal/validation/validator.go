package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jmario91/GeneracionWidget-Back/internal/catalog"
	"github.com/jmario91/GeneracionWidget-Back/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

// Mode selects how the rule table is applied: Create requires every
// non-optional field, Update treats all fields as optional but still checks
// whatever is present.
type Mode int

const (
	Create Mode = iota
	Update
)

type fieldKind int

const (
	kindTexto fieldKind = iota
	kindEntero
	kindDecimal
	kindBool
	kindListaTexto
)

// fieldRule is one row of the declarative rule table: presence, type, bounds,
// pattern and catalog membership for a single field.
type fieldRule struct {
	name        string
	kind        fieldKind
	required    bool
	requiredMsg string

	minLen    int
	maxLen    int
	minLenMsg string
	maxLenMsg string

	hasBounds bool
	min       float64
	max       float64
	minMsg    string
	maxMsg    string

	pattern    *regexp.Regexp
	patternMsg string

	enum      func(c *catalog.Catalogs) []string
	lowercase bool
}

var (
	codigoPostalRe = regexp.MustCompile(`^\d{5}$`)
	emailRe        = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// systemFields are managed by the storage layer and silently discarded from
// any request body before validation.
var systemFields = []string{"id", "_id", "createdAt", "updatedAt"}

// Validator checks candidate user records against the rule table and the
// shared catalogs. It is stateless apart from the read-only catalogs.
type Validator struct {
	catalogs *catalog.Catalogs
	rules    []fieldRule
}

func NewValidator(catalogs *catalog.Catalogs) *Validator {
	return &Validator{
		catalogs: catalogs,
		rules: []fieldRule{
			{
				name: "nombre", kind: kindTexto, required: true,
				requiredMsg: "El nombre es obligatorio",
				minLen:      2, minLenMsg: "El nombre debe tener al menos 2 caracteres",
				maxLen: 50, maxLenMsg: "El nombre no puede exceder 50 caracteres",
			},
			{
				name: "apellidoPaterno", kind: kindTexto, required: true,
				requiredMsg: "El apellido paterno es obligatorio",
				maxLen:      50, maxLenMsg: "El apellido paterno no puede exceder 50 caracteres",
			},
			{
				name: "apellidoMaterno", kind: kindTexto,
				maxLen: 50, maxLenMsg: "El apellido materno no puede exceder 50 caracteres",
			},
			{
				name: "estatus", kind: kindTexto, required: true,
				requiredMsg: "El estatus es obligatorio",
				enum:        func(c *catalog.Catalogs) []string { return c.EstatusUsuario },
			},
			{
				name: "fechaNacimiento", kind: kindTexto, required: true,
				requiredMsg: "La fecha de nacimiento es obligatoria",
			},
			{
				name: "sexo", kind: kindTexto, required: true,
				requiredMsg: "El sexo es obligatorio",
				enum:        func(c *catalog.Catalogs) []string { return c.Sexos },
			},
			{
				name: "edad", kind: kindEntero, required: true,
				requiredMsg: "La edad es obligatoria",
				hasBounds:   true, min: 0, max: 120,
				minMsg: "La edad no puede ser negativa",
				maxMsg: "La edad no puede ser mayor a 120 años",
			},
			{
				name: "entidad", kind: kindTexto, required: true,
				requiredMsg: "La entidad es obligatoria",
			},
			{
				name: "municipio", kind: kindTexto, required: true,
				requiredMsg: "El municipio es obligatorio",
			},
			{
				name: "colonia", kind: kindTexto, required: true,
				requiredMsg: "La colonia es obligatoria",
			},
			{
				name: "codigoPostal", kind: kindTexto, required: true,
				requiredMsg: "El código postal es obligatorio",
				pattern:     codigoPostalRe,
				patternMsg:  "El código postal debe tener 5 dígitos",
			},
			{
				name: "talla", kind: kindDecimal, required: true,
				requiredMsg: "La talla es obligatoria",
				hasBounds:   true, min: 0.5, max: 3.0,
				minMsg: "La talla debe ser mayor a 0.5 metros",
				maxMsg: "La talla no puede ser mayor a 3 metros",
			},
			{
				name: "peso", kind: kindDecimal, required: true,
				requiredMsg: "El peso es obligatorio",
				hasBounds:   true, min: 1, max: 500,
				minMsg: "El peso debe ser mayor a 1 kg",
				maxMsg: "El peso no puede ser mayor a 500 kg",
			},
			{
				name: "email", kind: kindTexto, required: true,
				requiredMsg: "El email es obligatorio",
				pattern:     emailRe,
				patternMsg:  "Por favor ingrese un email válido",
				lowercase:   true,
			},
			{
				name: "aceptaTerminos", kind: kindBool, required: true,
				requiredMsg: "Debe aceptar los términos y condiciones",
			},
			{
				name: "ocupacion", kind: kindTexto,
				enum: func(c *catalog.Catalogs) []string { return c.Ocupaciones },
			},
			{
				name: "estadoCivil", kind: kindTexto,
				enum: func(c *catalog.Catalogs) []string { return c.EstadosCiviles },
			},
			{
				name: "nivelEducativo", kind: kindTexto,
				enum: func(c *catalog.Catalogs) []string { return c.NivelesEducativos },
			},
			{
				name: "idioma", kind: kindTexto,
				enum: func(c *catalog.Catalogs) []string { return c.Idiomas },
			},
			{
				name: "hobbies", kind: kindListaTexto,
				enum: func(c *catalog.Catalogs) []string { return c.Hobbies },
			},
			{
				name: "notasAdicionales", kind: kindTexto,
				maxLen: 1000, maxLenMsg: "Las notas adicionales no pueden exceder 1000 caracteres",
			},
			{
				name: "activo", kind: kindBool,
			},
		},
	}
}

// Validate runs the whole rule table over input and returns the normalized
// fields ready for storage. Every violation is collected; the error, when
// non-nil, is a model.ValidationErrors with one message per broken rule.
// Unknown fields are dropped, system fields are stripped beforehand. The
// input map is never mutated.
func (v *Validator) Validate(input map[string]any, mode Mode) (bson.M, error) {
	fields := withoutSystemFields(input)

	normalized := bson.M{}
	var errs model.ValidationErrors

	for _, rule := range v.rules {
		raw, present := fields[rule.name]
		if !present || raw == nil {
			if rule.required && mode == Create {
				errs = append(errs, rule.requiredMsg)
			}
			continue
		}

		value, ok := v.checkField(rule, raw, &errs)
		if ok {
			normalized[rule.name] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}

func (v *Validator) checkField(rule fieldRule, raw any, errs *model.ValidationErrors) (any, bool) {
	switch rule.kind {
	case kindTexto:
		return v.checkTexto(rule, raw, errs)
	case kindEntero, kindDecimal:
		return v.checkNumero(rule, raw, errs)
	case kindBool:
		b, ok := raw.(bool)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("El campo %s debe ser booleano", rule.name))
			return nil, false
		}
		return b, true
	case kindListaTexto:
		return v.checkLista(rule, raw, errs)
	}
	return nil, false
}

func (v *Validator) checkTexto(rule fieldRule, raw any, errs *model.ValidationErrors) (any, bool) {
	s, ok := raw.(string)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("El campo %s debe ser una cadena de texto", rule.name))
		return nil, false
	}
	s = strings.TrimSpace(s)
	if rule.lowercase {
		s = strings.ToLower(s)
	}

	if s == "" {
		if rule.required {
			*errs = append(*errs, rule.requiredMsg)
			return nil, false
		}
		// an empty string is never a catalog member
		if rule.enum != nil {
			*errs = append(*errs, fmt.Sprintf("'%s' no es un valor válido para %s", s, rule.name))
			return nil, false
		}
		// optional free text set to empty clears the field
		return s, true
	}
	if rule.minLen > 0 && len([]rune(s)) < rule.minLen {
		*errs = append(*errs, rule.minLenMsg)
		return nil, false
	}
	if rule.maxLen > 0 && len([]rune(s)) > rule.maxLen {
		*errs = append(*errs, rule.maxLenMsg)
		return nil, false
	}
	if rule.pattern != nil && !rule.pattern.MatchString(s) {
		*errs = append(*errs, rule.patternMsg)
		return nil, false
	}
	if rule.enum != nil && !catalog.Contains(rule.enum(v.catalogs), s) {
		*errs = append(*errs, fmt.Sprintf("'%s' no es un valor válido para %s", s, rule.name))
		return nil, false
	}
	return s, true
}

func (v *Validator) checkNumero(rule fieldRule, raw any, errs *model.ValidationErrors) (any, bool) {
	f, ok := asFloat(raw)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("El campo %s debe ser un número", rule.name))
		return nil, false
	}
	if rule.kind == kindEntero && f != math.Trunc(f) {
		*errs = append(*errs, fmt.Sprintf("El campo %s debe ser un número entero", rule.name))
		return nil, false
	}
	if rule.hasBounds {
		if f < rule.min {
			*errs = append(*errs, rule.minMsg)
			return nil, false
		}
		if f > rule.max {
			*errs = append(*errs, rule.maxMsg)
			return nil, false
		}
	}
	if rule.kind == kindEntero {
		return int(f), true
	}
	return f, true
}

func (v *Validator) checkLista(rule fieldRule, raw any, errs *model.ValidationErrors) (any, bool) {
	items, ok := asSlice(raw)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("El campo %s debe ser una lista", rule.name))
		return nil, false
	}
	allowed := rule.enum(v.catalogs)
	out := make([]string, 0, len(items))
	valid := true
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("El campo %s debe ser una lista de texto", rule.name))
			valid = false
			continue
		}
		s = strings.TrimSpace(s)
		if !catalog.Contains(allowed, s) {
			*errs = append(*errs, fmt.Sprintf("'%s' no es un valor válido para %s", s, rule.name))
			valid = false
			continue
		}
		out = append(out, s)
	}
	if !valid {
		return nil, false
	}
	return out, true
}

func withoutSystemFields(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		if isSystemField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func isSystemField(name string) bool {
	for _, f := range systemFields {
		if f == name {
			return true
		}
	}
	return false
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asSlice(raw any) ([]any, bool) {
	switch s := raw.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	default:
		return nil, false
	}
}
