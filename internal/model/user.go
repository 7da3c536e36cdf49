package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user document in MongoDB. The bson keys mirror the
// document layout expected by the Angular frontend, so existing data stays
// wire-compatible.
type User struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre           string             `json:"nombre" bson:"nombre"`
	ApellidoPaterno  string             `json:"apellidoPaterno" bson:"apellidoPaterno"`
	ApellidoMaterno  string             `json:"apellidoMaterno,omitempty" bson:"apellidoMaterno,omitempty"`
	Estatus          string             `json:"estatus" bson:"estatus"`
	FechaNacimiento  string             `json:"fechaNacimiento" bson:"fechaNacimiento"`
	Sexo             string             `json:"sexo" bson:"sexo"`
	Edad             int                `json:"edad" bson:"edad"`
	Entidad          string             `json:"entidad" bson:"entidad"`
	Municipio        string             `json:"municipio" bson:"municipio"`
	Colonia          string             `json:"colonia" bson:"colonia"`
	CodigoPostal     string             `json:"codigoPostal" bson:"codigoPostal"`
	Talla            float64            `json:"talla" bson:"talla"`
	Peso             float64            `json:"peso" bson:"peso"`
	Email            string             `json:"email" bson:"email"`
	AceptaTerminos   bool               `json:"aceptaTerminos" bson:"aceptaTerminos"`
	Ocupacion        string             `json:"ocupacion,omitempty" bson:"ocupacion,omitempty"`
	EstadoCivil      string             `json:"estadoCivil,omitempty" bson:"estadoCivil,omitempty"`
	NivelEducativo   string             `json:"nivelEducativo,omitempty" bson:"nivelEducativo,omitempty"`
	Idioma           string             `json:"idioma,omitempty" bson:"idioma,omitempty"`
	Hobbies          []string           `json:"hobbies" bson:"hobbies"`
	NotasAdicionales string             `json:"notasAdicionales,omitempty" bson:"notasAdicionales,omitempty"`
	Activo           bool               `json:"activo" bson:"activo"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`

	// EdadCalculada is derived from FechaNacimiento at read time, never stored.
	EdadCalculada *int `json:"edadCalculada" bson:"-"`
}

// CalcularEdad computes the age in full years from FechaNacimiento as of now.
// Returns nil when the birth date is absent or unparseable.
func (u *User) CalcularEdad(now time.Time) *int {
	if u.FechaNacimiento == "" {
		return nil
	}
	nacimiento, err := parseFecha(u.FechaNacimiento)
	if err != nil {
		return nil
	}
	edad := now.Year() - nacimiento.Year()
	if now.Month() < nacimiento.Month() ||
		(now.Month() == nacimiento.Month() && now.Day() < nacimiento.Day()) {
		edad--
	}
	return &edad
}

func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
