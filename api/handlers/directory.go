package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/metrics"
	"github.com/meghashyamc/finder/services/listing"
	"github.com/meghashyamc/finder/services/recents"
	"github.com/meghashyamc/finder/validation"
	"github.com/spf13/afero"
)

type DirectoryRequest struct {
	Path        string `form:"path" validate:"required,abs_path"`
	Query       string `form:"query" validate:"max=1000"`
	FoldersOnly bool   `form:"folders_only"`
}

func SetupDirectory(router *gin.Engine, logger logger.Logger, fs afero.Fs, recentsService *recents.Service, validator *validation.Validator) {
	service := listing.New(logger, fs)
	router.GET("/directory", handleListDirectory(service, recentsService, logger, validator))
}

func handleListDirectory(service *listing.Service, recentsService *recents.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := DirectoryRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from directory request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request query parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate directory request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		list := service.List
		if request.FoldersOnly {
			list = service.ListFolders
		}

		entries, err := list(request.Path, request.Query)
		metrics.RecordListing(request.Query != "", len(entries), err)
		if err != nil {
			logger.Warn("could not list directory", "path", request.Path, "err", err.Error())
			c.Abort()
			writeResponse(c, nil, statusForError(err), []string{err.Error()})
			return
		}

		if request.Query == "" {
			if err := recentsService.Visit(request.Path); err != nil {
				logger.Warn("could not record directory visit", "path", request.Path, "err", err.Error())
			}
		}

		writeResponse(c, entries, http.StatusOK, nil)
	}
}
