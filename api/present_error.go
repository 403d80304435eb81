package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, models.BadParameterError) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	} else if errors.Is(err, models.NotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	} else if errors.Is(err, models.ConflictError) {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	} else {
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
	return true
}
