package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/services/sidebar"
	"github.com/spf13/afero"
)

func SetupSidebar(router *gin.Engine, logger logger.Logger, fs afero.Fs, homeDir string) {
	service := sidebar.New(logger, fs, homeDir)
	router.GET("/sidebar", handleSidebar(service))
}

func handleSidebar(service *sidebar.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResponse(c, service.Locations(), http.StatusOK, nil)
	}
}
