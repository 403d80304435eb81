package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tenurelab/tenure-backend/dto"
	"github.com/tenurelab/tenure-backend/usecases"
)

func handleLogCall(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateCallBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewOutreachUsecase()
		err := usecase.LogCall(ctx, dto.AdaptCreateOutboundCall(data))
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusCreated)
	}
}

func handleLogTexts(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateMessagesBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewOutreachUsecase()
		err := usecase.LogTexts(ctx, dto.AdaptCreateOutboundMessages(data))
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusCreated)
	}
}

func handleLogEmails(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateMessagesBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewOutreachUsecase()
		err := usecase.LogEmails(ctx, dto.AdaptCreateOutboundMessages(data))
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusCreated)
	}
}
