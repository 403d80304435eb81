package dto

import (
	"time"

	"github.com/tenurelab/tenure-backend/models"
)

type Prediction struct {
	ClientId    int64     `json:"client_id"`
	Period      int       `json:"period"`
	Probability float64   `json:"probability"`
	DateCreated time.Time `json:"date_created"`
}

func AdaptPredictionDto(prediction models.Prediction) Prediction {
	return Prediction{
		ClientId:    prediction.ClientId,
		Period:      prediction.Period,
		Probability: prediction.Probability,
		DateCreated: prediction.DateCreated,
	}
}
