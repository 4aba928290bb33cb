package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/youruser/lettercat/internal/catalogue"
)

// RegisterRoutes mounts the JSON API under /api and, when imageRoot is set,
// serves the catalogue images so their locators also work in a browser.
func (s *Server) RegisterRoutes(r *gin.Engine, imageRoot string) {
	if imageRoot != "" {
		r.Static("/"+catalogue.ImageDir, filepath.Join(imageRoot, catalogue.ImageDir))
	}
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/letters", s.lettersHandler)
		api.GET("/images", s.imagesHandler)
		api.POST("/text/status", s.textStatusHandler)
		api.POST("/concat", s.concatHandler)

		sel := api.Group("/selections")
		sel.POST("", s.createSelection)
		sel.GET("/:id", s.getSelection)
		sel.DELETE("/:id", s.deleteSelection)
		sel.POST("/:id/images", s.addImage)
		sel.PUT("/:id/images/:sid", s.replaceImage)
		sel.DELETE("/:id/images/:sid", s.removeImage)
		sel.POST("/:id/reorder", s.reorderImages)
		sel.POST("/:id/clear", s.clearSelection)
		sel.POST("/:id/text", s.addText)
		sel.GET("/:id/preview", s.previewHandler)
		sel.GET("/:id/export", s.exportHandler)
		sel.GET("/:id/text", s.exportTextHandler)
		sel.GET("/:id/qr", s.qrHandler)
	}
}
