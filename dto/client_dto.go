package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/tenurelab/tenure-backend/models"
)

type Client struct {
	ClientId       int64       `json:"client_id"`
	Gender         string      `json:"gender"`
	BirthDate      *time.Time  `json:"birth_date,omitempty"`
	Phone          string      `json:"phone"`
	MobileOperator string      `json:"mobile_operator"`
	Email          null.String `json:"email"`
}

func AdaptClientDto(client models.Client) Client {
	return Client{
		ClientId:       client.ClientId,
		Gender:         client.Gender,
		BirthDate:      client.BirthDate,
		Phone:          client.Phone,
		MobileOperator: client.MobileOperator,
		Email:          client.Email,
	}
}
