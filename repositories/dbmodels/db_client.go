package dbmodels

import (
	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

type DBClient struct {
	ClientId       int64       `db:"client_id"`
	Gender         pgtype.Text `db:"gender"`
	BirthDate      pgtype.Date `db:"birth_date"`
	Phone          pgtype.Text `db:"phone"`
	MobileOperator pgtype.Text `db:"mobile_operator"`
	Email          pgtype.Text `db:"email"`
}

const TABLE_CLIENTS = "clients"

var ColumnsSelectClient = utils.ColumnList[DBClient]()

func AdaptClient(db DBClient) (models.Client, error) {
	client := models.Client{
		ClientId:       db.ClientId,
		Gender:         db.Gender.String,
		Phone:          db.Phone.String,
		MobileOperator: db.MobileOperator.String,
	}

	if db.BirthDate.Valid {
		client.BirthDate = &db.BirthDate.Time
	}

	if db.Email.Valid {
		client.Email = null.StringFrom(db.Email.String)
	}

	return client, nil
}
