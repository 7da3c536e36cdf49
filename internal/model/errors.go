package model

import "strings"

// ValidationErrors aggregates every field rule violated by a request body.
// Messages keep their rule-table order so responses are deterministic.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return "error de validación: " + strings.Join(e, "; ")
}
