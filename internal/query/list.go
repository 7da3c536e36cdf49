// Package query translates raw list-request parameters into the MongoDB
// filter and pagination values the repository executes.
package query

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/jmario91/GeneracionWidget-Back/internal/db"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrPageInvalida   = errors.New("el parámetro page debe ser un entero positivo")
	ErrLimitInvalido  = errors.New("el parámetro limit debe ser un entero positivo")
	ErrActivoInvalido = errors.New("el parámetro activo debe ser 'true' o 'false'")
)

// ListParams are the raw query-string values of GET /api/usuarios.
type ListParams struct {
	Page   string
	Limit  string
	Activo string
	Search string
}

// ListQuery is the translated form: an AND-composed filter plus 1-based
// pagination. Sort order is fixed by the repository (createdAt descending).
type ListQuery struct {
	Filter bson.M
	Page   int64
	Limit  int64
}

// TranslateList parses and validates params. Zero, negative or non-numeric
// page/limit values are rejected rather than silently producing a negative
// skip, and activo only accepts the exact strings "true" and "false".
func TranslateList(params ListParams) (ListQuery, error) {
	page := int64(1)
	if params.Page != "" {
		n, err := strconv.ParseInt(params.Page, 10, 64)
		if err != nil || n < 1 {
			return ListQuery{}, ErrPageInvalida
		}
		page = n
	}

	limit := int64(10)
	if params.Limit != "" {
		n, err := strconv.ParseInt(params.Limit, 10, 64)
		if err != nil || n < 1 {
			return ListQuery{}, ErrLimitInvalido
		}
		limit = n
	}

	filter := db.NewFilter()

	if params.Activo != "" {
		switch params.Activo {
		case "true":
			filter.Eq("activo", true)
		case "false":
			filter.Eq("activo", false)
		default:
			return ListQuery{}, ErrActivoInvalido
		}
	}

	if params.Search != "" {
		pattern := regexp.QuoteMeta(params.Search)
		filter.Or(
			bson.M{"nombre": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": pattern, "$options": "i"}},
		)
	}

	return ListQuery{Filter: filter.Build(), Page: page, Limit: limit}, nil
}
