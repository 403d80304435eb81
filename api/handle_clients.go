package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tenurelab/tenure-backend/dto"
	"github.com/tenurelab/tenure-backend/pure_utils"
	"github.com/tenurelab/tenure-backend/usecases"
)

// parseClientIds splits a comma separated id list ("1,2,3") into int64s.
func parseClientIds(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	return pure_utils.MapErr(strings.Split(raw, ","), func(s string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	})
}

func handleGetClients(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		clientIds, err := parseClientIds(c.Query("client_ids"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewClientUsecase()
		clients, err := usecase.GetClients(ctx, clientIds)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"clients": pure_utils.Map(clients, dto.AdaptClientDto)})
	}
}
