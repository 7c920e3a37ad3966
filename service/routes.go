package service

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *Handlers) *gin.Engine {
	routes := gin.New()
	routes.Use(gin.Recovery(), RequestLogger(h.Logger))

	routes.GET("/", h.Index)
	routes.GET("/books", h.ListBooks)
	routes.GET("/books/:id/delete", h.ConfirmDelete)
	routes.GET("/book/:id", h.GetBookById)
	routes.GET("/store", h.Store)
	routes.GET("/activity", h.Activity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(h.CacheUserRequest)

		cachedRoutes.POST("/books", h.SubmitBook)
		cachedRoutes.POST("/books/:id/delete", h.DeleteBook)
		cachedRoutes.PUT("/book", h.CreateBook)
		cachedRoutes.POST("/book/:id", h.UpdateBookById)
		cachedRoutes.DELETE("/book/:id", h.DeleteBookById)
	}

	return routes
}
