package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tenurelab/tenure-backend/dto"
	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/pure_utils"
	"github.com/tenurelab/tenure-backend/usecases"
)

func handleListPredictions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		params := struct {
			Period      int      `form:"period" binding:"required,min=1"`
			LowerBound  *float64 `form:"lower" binding:"required,min=0,max=1"`
			UpperBound  *float64 `form:"upper" binding:"required,min=0,max=1"`
			DateCreated string   `form:"date_created"`
		}{}
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		query := models.PredictionQuery{
			Period:     params.Period,
			LowerBound: *params.LowerBound,
			UpperBound: *params.UpperBound,
		}
		if params.DateCreated != "" {
			dateCreated, err := time.Parse(time.RFC3339, params.DateCreated)
			if err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			query.DateCreated = &dateCreated
		}

		usecase := uc.NewPredictionUsecase()
		predictions, err := usecase.ListPredictions(ctx, query)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"predictions": pure_utils.Map(predictions, dto.AdaptPredictionDto)})
	}
}
