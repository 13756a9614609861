package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/metrics"
	"github.com/meghashyamc/finder/services/items"
	"github.com/meghashyamc/finder/validation"
	"github.com/spf13/afero"
)

type CreateItemRequest struct {
	Path string `json:"path" validate:"required,abs_path"`
	Name string `json:"name" validate:"valid_name"`
}

type RenameItemRequest struct {
	Path    string `json:"path" validate:"required,abs_path"`
	NewName string `json:"new_name" validate:"valid_name"`
}

type DeleteItemRequest struct {
	Path string `form:"path" validate:"required,abs_path"`
}

type TransferItemRequest struct {
	Source      string `json:"source" validate:"required,abs_path"`
	Destination string `json:"destination" validate:"required,abs_path"`
}

type ItemResponse struct {
	Path string `json:"path"`
}

func SetupItems(router *gin.Engine, logger logger.Logger, fs afero.Fs, validator *validation.Validator) {
	service := items.New(logger, fs)
	group := router.Group("/items")
	group.POST("/folder", handleCreateFolder(service, logger, validator))
	group.POST("/file", handleCreateFile(service, logger, validator))
	group.PUT("/rename", handleRename(service, logger, validator))
	group.DELETE("", handleDelete(service, logger, validator))
	group.POST("/move", handleMove(service, logger, validator))
	group.POST("/copy", handleCopy(service, logger, validator))
}

// bindItemRequest binds and validates a JSON body, writing the error response itself.
func bindItemRequest(c *gin.Context, request any, logger logger.Logger, validator *validation.Validator) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		logger.Warn("could not extract expected body from item request", "err", err.Error())
		c.Abort()
		writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request body parameters"})
		return false
	}

	if err := validator.Validate(request); err != nil {
		logger.Warn("could not validate item request", "err", err.Error())
		c.Abort()
		writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
		return false
	}

	return true
}

func writeItemResult(c *gin.Context, logger logger.Logger, operation string, path string, err error, successStatus int) {
	metrics.RecordItemOperation(operation, err)
	if err != nil {
		logger.Warn("item operation failed", "operation", operation, "err", err.Error())
		c.Abort()
		writeResponse(c, nil, statusForError(err), []string{err.Error()})
		return
	}

	logger.Info("item operation succeeded", "operation", operation, "path", path)
	if successStatus == http.StatusNoContent {
		writeResponse(c, nil, successStatus, nil)
		return
	}
	writeResponse(c, ItemResponse{Path: path}, successStatus, nil)
}

func handleCreateFolder(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := CreateItemRequest{}
		if !bindItemRequest(c, &request, logger, validator) {
			return
		}

		path, err := service.CreateFolder(request.Path, request.Name)
		writeItemResult(c, logger, "create_folder", path, err, http.StatusCreated)
	}
}

func handleCreateFile(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := CreateItemRequest{}
		if !bindItemRequest(c, &request, logger, validator) {
			return
		}

		path, err := service.CreateFile(request.Path, request.Name)
		writeItemResult(c, logger, "create_file", path, err, http.StatusCreated)
	}
}

func handleRename(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := RenameItemRequest{}
		if !bindItemRequest(c, &request, logger, validator) {
			return
		}

		path, err := service.Rename(request.Path, request.NewName)
		writeItemResult(c, logger, "rename", path, err, http.StatusOK)
	}
}

func handleDelete(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := DeleteItemRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from delete request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request query parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate delete request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		err := service.Delete(request.Path)
		writeItemResult(c, logger, "delete", request.Path, err, http.StatusNoContent)
	}
}

func handleMove(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := TransferItemRequest{}
		if !bindItemRequest(c, &request, logger, validator) {
			return
		}

		path, err := service.Move(request.Source, request.Destination)
		writeItemResult(c, logger, "move", path, err, http.StatusOK)
	}
}

func handleCopy(service *items.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := TransferItemRequest{}
		if !bindItemRequest(c, &request, logger, validator) {
			return
		}

		path, err := service.Copy(request.Source, request.Destination)
		writeItemResult(c, logger, "copy", path, err, http.StatusOK)
	}
}
