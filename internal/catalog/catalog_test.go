package catalog_test

import (
	"testing"

	"github.com/jmario91/GeneracionWidget-Back/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestNew_ContainsAllSevenCatalogs(t *testing.T) {
	c := catalog.New()

	require.Equal(t, []string{"H", "M"}, c.Sexos)
	require.Equal(t, []string{"Alta", "Baja"}, c.EstatusUsuario)
	require.Len(t, c.Ocupaciones, 6)
	require.Len(t, c.EstadosCiviles, 5)
	require.Len(t, c.NivelesEducativos, 6)
	require.Len(t, c.Idiomas, 7)
	require.Equal(t, []string{"Leer", "Deportes", "Música", "Viajar", "Cine"}, c.Hobbies)
}

func TestNew_StableAcrossCalls(t *testing.T) {
	require.Equal(t, catalog.New(), catalog.New())
}

func TestContains(t *testing.T) {
	c := catalog.New()

	require.True(t, catalog.Contains(c.Sexos, "H"))
	require.True(t, catalog.Contains(c.EstadosCiviles, "Unión libre"))
	require.False(t, catalog.Contains(c.Sexos, "h"))
	require.False(t, catalog.Contains(c.Hobbies, "Cocinar"))
	require.False(t, catalog.Contains(nil, "H"))
}
