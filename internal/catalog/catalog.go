package catalog

// Catalogs holds the static enumerations of allowed values for the
// classification fields of a user. It is built once at startup and never
// mutated afterwards, so it is safe to share across requests.
type Catalogs struct {
	Sexos             []string `json:"SEXOS"`
	EstatusUsuario    []string `json:"ESTATUS_USUARIO"`
	Ocupaciones       []string `json:"OCUPACIONES"`
	EstadosCiviles    []string `json:"ESTADOS_CIVILES"`
	NivelesEducativos []string `json:"NIVELES_EDUCATIVOS"`
	Idiomas           []string `json:"IDIOMAS"`
	Hobbies           []string `json:"HOBBIES_DISPONIBLES"`
}

// New returns the catalog set used by the validator and the lookup endpoint.
func New() *Catalogs {
	return &Catalogs{
		Sexos:          []string{"H", "M"},
		EstatusUsuario: []string{"Alta", "Baja"},
		Ocupaciones: []string{
			"Estudiante", "Empleado", "Independiente", "Desempleado", "Jubilado", "Otro",
		},
		EstadosCiviles: []string{
			"Soltero", "Casado", "Divorciado", "Viudo", "Unión libre",
		},
		NivelesEducativos: []string{
			"Primaria", "Secundaria", "Preparatoria", "Licenciatura", "Maestría", "Doctorado",
		},
		Idiomas: []string{
			"Español", "Inglés", "Francés", "Alemán", "Italiano", "Portugués", "Otro",
		},
		Hobbies: []string{"Leer", "Deportes", "Música", "Viajar", "Cine"},
	}
}

// Contains reports whether value is a member of the given catalog.
func Contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
