package approuters

import (
	"github.com/jmario91/GeneracionWidget-Back/internal/configuration"

	"github.com/gin-gonic/gin"
)

func UserRouters(router *gin.Engine, container *configuration.Container) {
	userRoute := router.Group("/api/usuarios")
	{
		userRoute.POST("", container.UserHandler.CreateUser)
		userRoute.GET("", container.UserHandler.GetUsers)
		userRoute.GET("/:id", container.UserHandler.GetUserByID)
		userRoute.PUT("/:id", container.UserHandler.UpdateUser)
		userRoute.DELETE("/:id", container.UserHandler.DeleteUser)
		userRoute.DELETE("/:id/permanente", container.UserHandler.DeleteUserPermanent)
		userRoute.PATCH("/:id/reactivar", container.UserHandler.ReactivateUser)
	}
}
