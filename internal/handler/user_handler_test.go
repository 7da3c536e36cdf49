package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmario91/GeneracionWidget-Back/internal/catalog"
	"github.com/jmario91/GeneracionWidget-Back/internal/handler"
	"github.com/jmario91/GeneracionWidget-Back/internal/model"
	"github.com/jmario91/GeneracionWidget-Back/internal/query"
	"github.com/jmario91/GeneracionWidget-Back/internal/repo"
	"github.com/jmario91/GeneracionWidget-Back/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubService returns canned results so handler tests only exercise the
// HTTP mapping: status codes and envelope shape.
type stubService struct {
	user       *model.User
	users      []model.User
	pagination *service.Pagination
	err        error
}

func (s *stubService) Create(context.Context, map[string]any) (*model.User, error) {
	return s.user, s.err
}

func (s *stubService) List(context.Context, query.ListParams) ([]model.User, *service.Pagination, error) {
	return s.users, s.pagination, s.err
}

func (s *stubService) GetByID(context.Context, string) (*model.User, error) {
	return s.user, s.err
}

func (s *stubService) Update(context.Context, string, map[string]any) (*model.User, error) {
	return s.user, s.err
}

func (s *stubService) SoftDelete(context.Context, string) (*model.User, error) {
	return s.user, s.err
}

func (s *stubService) HardDelete(context.Context, string) (*model.User, error) {
	return s.user, s.err
}

func (s *stubService) Reactivate(context.Context, string) (*model.User, error) {
	return s.user, s.err
}

func newRouter(svc service.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := handler.NewUserHandler(svc)
	usuarios := router.Group("/api/usuarios")
	{
		usuarios.POST("", h.CreateUser)
		usuarios.GET("", h.GetUsers)
		usuarios.GET("/:id", h.GetUserByID)
		usuarios.PUT("/:id", h.UpdateUser)
		usuarios.DELETE("/:id", h.DeleteUser)
		usuarios.DELETE("/:id/permanente", h.DeleteUserPermanent)
		usuarios.PATCH("/:id/reactivar", h.ReactivateUser)
	}

	ch := handler.NewCatalogHandler(catalog.New())
	router.GET("/api/catalogos", ch.GetCatalogs)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func sampleUser() *model.User {
	return &model.User{
		ID:     primitive.NewObjectID(),
		Nombre: "Juan",
		Email:  "juan@test.com",
		Activo: true,
	}
}

func TestCreateUser_Returns201WithEnvelope(t *testing.T) {
	router := newRouter(&stubService{user: sampleUser()})

	w, body := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]any{"nombre": "Juan"})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Usuario creado exitosamente", body["message"])
	require.NotNil(t, body["data"])
}

func TestCreateUser_ValidationFailureReturnsAllMessages(t *testing.T) {
	router := newRouter(&stubService{err: model.ValidationErrors{
		"La edad no puede ser mayor a 120 años",
		"El código postal debe tener 5 dígitos",
	}})

	w, body := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Error de validación", body["message"])
	require.Len(t, body["errors"], 2)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router := newRouter(&stubService{err: repo.ErrDuplicateEmail})

	w, body := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "El email ya está registrado", body["message"])
	require.Equal(t, "Email duplicado", body["error"])
}

func TestCreateUser_MalformedBody(t *testing.T) {
	router := newRouter(&stubService{user: sampleUser()})
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUsers_EnvelopeWithPagination(t *testing.T) {
	router := newRouter(&stubService{
		users: []model.User{*sampleUser()},
		pagination: &service.Pagination{
			CurrentPage: 2,
			TotalPages:  3,
			TotalUsers:  25,
			HasNextPage: true,
			HasPrevPage: true,
		},
	})

	w, body := doRequest(t, router, http.MethodGet, "/api/usuarios?page=2&limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), pagination["currentPage"])
	require.Equal(t, float64(3), pagination["totalPages"])
	require.Equal(t, float64(25), pagination["totalUsers"])
	require.Equal(t, true, pagination["hasNextPage"])
	require.Equal(t, true, pagination["hasPrevPage"])
}

func TestGetUsers_BadQueryParamsReturn400(t *testing.T) {
	router := newRouter(&stubService{err: query.ErrActivoInvalido})

	w, body := doRequest(t, router, http.MethodGet, "/api/usuarios?activo=yes", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Parámetros de consulta inválidos", body["message"])
}

func TestGetUserByID_InvalidID(t *testing.T) {
	router := newRouter(&stubService{err: repo.ErrInvalidID})

	w, body := doRequest(t, router, http.MethodGet, "/api/usuarios/nohex", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "ID de usuario inválido", body["message"])
}

func TestGetUserByID_NotFound(t *testing.T) {
	router := newRouter(&stubService{err: repo.ErrNotFound})

	w, body := doRequest(t, router, http.MethodGet, "/api/usuarios/"+primitive.NewObjectID().Hex(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Usuario no encontrado", body["message"])
}

func TestGetUserByID_UnclassifiedErrorIs500(t *testing.T) {
	router := newRouter(&stubService{err: context.DeadlineExceeded})

	w, body := doRequest(t, router, http.MethodGet, "/api/usuarios/"+primitive.NewObjectID().Hex(), nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Error al obtener usuario", body["message"])
	require.Equal(t, context.DeadlineExceeded.Error(), body["error"])
}

func TestDeleteUser_SoftDeleteMessage(t *testing.T) {
	user := sampleUser()
	user.Activo = false
	router := newRouter(&stubService{user: user})

	w, body := doRequest(t, router, http.MethodDelete, "/api/usuarios/"+user.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Usuario eliminado exitosamente (desactivado)", body["message"])

	data := body["data"].(map[string]any)
	require.Equal(t, false, data["activo"])
}

func TestDeleteUserPermanent_Message(t *testing.T) {
	user := sampleUser()
	router := newRouter(&stubService{user: user})

	w, body := doRequest(t, router, http.MethodDelete, "/api/usuarios/"+user.ID.Hex()+"/permanente", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Usuario eliminado permanentemente", body["message"])
}

func TestReactivateUser_Message(t *testing.T) {
	user := sampleUser()
	router := newRouter(&stubService{user: user})

	w, body := doRequest(t, router, http.MethodPatch, "/api/usuarios/"+user.ID.Hex()+"/reactivar", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Usuario reactivado exitosamente", body["message"])

	data := body["data"].(map[string]any)
	require.Equal(t, true, data["activo"])
}

func TestUpdateUser_Message(t *testing.T) {
	user := sampleUser()
	router := newRouter(&stubService{user: user})

	w, body := doRequest(t, router, http.MethodPut, "/api/usuarios/"+user.ID.Hex(), map[string]any{"nombre": "Pedro"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Usuario actualizado exitosamente", body["message"])
}

func TestGetCatalogs_ReturnsAllSevenStable(t *testing.T) {
	router := newRouter(&stubService{})

	w1, body1 := doRequest(t, router, http.MethodGet, "/api/catalogos", nil)
	w2, body2 := doRequest(t, router, http.MethodGet, "/api/catalogos", nil)

	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, body1, body2)

	data := body1["data"].(map[string]any)
	for _, key := range []string{
		"SEXOS", "ESTATUS_USUARIO", "OCUPACIONES", "ESTADOS_CIVILES",
		"NIVELES_EDUCATIVOS", "IDIOMAS", "HOBBIES_DISPONIBLES",
	} {
		require.Contains(t, data, key)
	}
}
