package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

func TestGetClientsByIds(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		birthDate := time.Date(1988, time.March, 12, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT .* FROM clients WHERE client_id IN \(\$1,\$2\)`).
			WithArgs(int64(101), int64(103)).
			WillReturnRows(pgxmock.NewRows(dbmodels.ColumnsSelectClient).
				AddRow(int64(101), "Female", birthDate, "+995551112233", "Geocell", "n.k@example.com").
				AddRow(int64(103), "Male", nil, "+995551119900", "Magti", nil))

		repo := NewTenureDbRepository()
		clients, err := repo.GetClientsByIds(context.Background(), testExecutor{mock},
			[]int64{101, 103})

		assert.NoError(t, err)
		assert.Equal(t, []models.Client{
			{
				ClientId:       101,
				Gender:         "Female",
				BirthDate:      &birthDate,
				Phone:          "+995551112233",
				MobileOperator: "Geocell",
				Email:          null.StringFrom("n.k@example.com"),
			},
			{
				ClientId:       103,
				Gender:         "Male",
				Phone:          "+995551119900",
				MobileOperator: "Magti",
			},
		}, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match returns an empty list", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM clients WHERE client_id IN \(\$1\)`).
			WithArgs(int64(999)).
			WillReturnRows(pgxmock.NewRows(dbmodels.ColumnsSelectClient))

		repo := NewTenureDbRepository()
		clients, err := repo.GetClientsByIds(context.Background(), testExecutor{mock}, []int64{999})

		assert.NoError(t, err)
		assert.Empty(t, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
