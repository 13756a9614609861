package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/services/recents"
	"github.com/meghashyamc/finder/validation"
)

const defaultRecentsPerRequest = 20

type RecentsRequest struct {
	Limit int `form:"limit" validate:"min=0,max=100"`
}

func (r *RecentsRequest) setDefaults() {
	if r.Limit == 0 {
		r.Limit = defaultRecentsPerRequest
	}
}

func SetupRecents(router *gin.Engine, logger logger.Logger, service *recents.Service, validator *validation.Validator) {
	router.GET("/recents", handleListRecents(service, logger, validator))
	router.DELETE("/recents", handleClearRecents(service, logger))
}

func handleListRecents(service *recents.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := RecentsRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from recents request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request query parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate recents request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}
		request.setDefaults()

		directories, err := service.List(request.Limit)
		if err != nil {
			logger.Error("could not list recent directories", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, directories, http.StatusOK, nil)
	}
}

func handleClearRecents(service *recents.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.Clear(); err != nil {
			logger.Error("could not clear recent directories", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, nil, http.StatusNoContent, nil)
	}
}
