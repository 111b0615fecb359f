package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-term-search/config"
	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
	"github.com/gcbaptista/go-term-search/model"
)

// CreateDatasetHandler creates a new dataset from posted settings.
// Request Body: config.DatasetSettings
func (api *API) CreateDatasetHandler(c *gin.Context) {
	var settings config.DatasetSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateDatasetSettings(&settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateDataset(settings); err != nil {
		if errors.Is(err, internalErrors.ErrDatasetAlreadyExists) {
			SendDatasetExistsError(c, settings.Name)
			return
		}
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendInternalError(c, "create dataset", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Dataset '" + settings.Name + "' created"})
}

// ListDatasetsHandler lists the settings of all datasets.
func (api *API) ListDatasetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"datasets": api.engine.ListDatasets()})
}

// GetDatasetHandler returns one dataset's settings and document count.
func (api *API) GetDatasetHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")

	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	dataset, err := api.engine.GetDataset(datasetName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, datasetName)
			return
		}
		SendInternalError(c, "get dataset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings":       dataset.Settings(),
		"document_count": dataset.Count(),
	})
}

// DeleteDatasetHandler deletes a dataset and its documents.
func (api *API) DeleteDatasetHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")

	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteDataset(datasetName); err != nil {
		if errors.Is(err, internalErrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, datasetName)
			return
		}
		SendInternalError(c, "delete dataset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dataset '" + datasetName + "' deleted"})
}

// AddDocumentsHandler adds documents to a dataset.
// Request Body: array of model.Document
func (api *API) AddDocumentsHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")

	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	dataset, err := api.engine.GetDataset(datasetName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, datasetName)
			return
		}
		SendInternalError(c, "get dataset", err)
		return
	}

	var docs []model.Document
	if err := c.ShouldBindJSON(&docs); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateDocuments(docs); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := dataset.AddDocuments(docs...); err != nil {
		SendInternalError(c, "add documents", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Documents added",
		"document_count": dataset.Count(),
	})
}
