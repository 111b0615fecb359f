package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
	"github.com/gcbaptista/go-term-search/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query             string `json:"query"`
	MatchAll          *bool  `json:"match_all,omitempty"`           // Optional: override dataset setting
	Limit             *int   `json:"limit,omitempty"`               // Optional: override dataset default limit
	DisableStartsWith *bool  `json:"disable_starts_with,omitempty"` // Optional: override dataset setting
}

// SearchHandler handles search requests against a dataset.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
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

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := dataset.Search(services.SearchQuery{
		QueryString:       req.Query,
		MatchAll:          req.MatchAll,
		Limit:             req.Limit,
		DisableStartsWith: req.DisableStartsWith,
	})
	if err != nil {
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
