package dbmodels

import (
	"time"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

type DBPrediction struct {
	RowId       int64     `db:"row_id"`
	DateCreated time.Time `db:"date_created"`
	ClientId    int64     `db:"client_id"`
	Period      int       `db:"period"`
	Probability float64   `db:"probability"`
}

const TABLE_SURVIVAL_PREDICTIONS = "survival_predictions"

var ColumnsSelectPrediction = utils.ColumnList[DBPrediction]()

func AdaptPrediction(db DBPrediction) (models.Prediction, error) {
	return models.Prediction{
		RowId:       db.RowId,
		DateCreated: db.DateCreated,
		ClientId:    db.ClientId,
		Period:      db.Period,
		Probability: db.Probability,
	}, nil
}
