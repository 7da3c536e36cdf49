package handler

import (
	"errors"
	"net/http"

	"github.com/jmario91/GeneracionWidget-Back/internal/model"
	"github.com/jmario91/GeneracionWidget-Back/internal/query"
	"github.com/jmario91/GeneracionWidget-Back/internal/repo"
	"github.com/jmario91/GeneracionWidget-Back/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler interface {
	CreateUser(c *gin.Context)
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
	DeleteUserPermanent(c *gin.Context)
	ReactivateUser(c *gin.Context)
}

type userHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) UserHandler {
	return &userHandler{
		service: service,
	}
}

func (h *userHandler) CreateUser(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Cuerpo de la petición inválido",
			"error":   err.Error(),
		})
		return
	}

	user, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "Error interno del servidor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Usuario creado exitosamente",
		"data":    user,
	})
}

func (h *userHandler) GetUsers(c *gin.Context) {
	params := query.ListParams{
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
		Activo: c.Query("activo"),
		Search: c.Query("search"),
	}

	users, pagination, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err, "Error al obtener usuarios")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       users,
		"pagination": pagination,
	})
}

func (h *userHandler) GetUserByID(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error al obtener usuario")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

func (h *userHandler) UpdateUser(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Cuerpo de la petición inválido",
			"error":   err.Error(),
		})
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err, "Error al actualizar usuario")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario actualizado exitosamente",
		"data":    user,
	})
}

// DeleteUser performs the soft delete: the user is marked inactive, never
// removed.
func (h *userHandler) DeleteUser(c *gin.Context) {
	user, err := h.service.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error al eliminar usuario")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario eliminado exitosamente (desactivado)",
		"data":    user,
	})
}

func (h *userHandler) DeleteUserPermanent(c *gin.Context) {
	user, err := h.service.HardDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error al eliminar usuario permanentemente")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario eliminado permanentemente",
		"data":    user,
	})
}

func (h *userHandler) ReactivateUser(c *gin.Context) {
	user, err := h.service.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error al reactivar usuario")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuario reactivado exitosamente",
		"data":    user,
	})
}

// respondError maps classified errors to their HTTP status and envelope.
// Anything unclassified becomes a 500 with the underlying message.
func (h *userHandler) respondError(c *gin.Context, err error, fallback string) {
	var validationErrs model.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error de validación",
			"errors":  []string(validationErrs),
		})
	case errors.Is(err, repo.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "El email ya está registrado",
			"error":   "Email duplicado",
		})
	case errors.Is(err, repo.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID de usuario inválido",
		})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Usuario no encontrado",
		})
	case errors.Is(err, query.ErrPageInvalida),
		errors.Is(err, query.ErrLimitInvalido),
		errors.Is(err, query.ErrActivoInvalido):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Parámetros de consulta inválidos",
			"error":   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fallback,
			"error":   err.Error(),
		})
	}
}
