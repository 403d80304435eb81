package repositories

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/tenurelab/tenure-backend/models"
)

// LoadCsvIntoTable streams a CSV extract (with a header line) into the named
// raw table, letting Postgres parse and type the values. Empty fields load as
// NULL. Rows append to what is already there; a duplicate primary key
// surfaces as a ConflictError.
func (repo *TenureDbRepository) LoadCsvIntoTable(
	ctx context.Context,
	tx Transaction,
	tableName string,
	file io.Reader,
) (int64, error) {
	if err := validateDbExecutor(tx); err != nil {
		return 0, err
	}

	sql := fmt.Sprintf("COPY %s FROM STDIN WITH (FORMAT csv, HEADER true, NULL '')",
		pgx.Identifier{tableName}.Sanitize())

	tag, err := tx.RawTx().Conn().PgConn().CopyFrom(ctx, file, sql)
	if err != nil {
		if IsUniqueViolationError(err) {
			return 0, errors.Wrap(models.ConflictError,
				fmt.Sprintf("duplicate rows while loading table %s", tableName))
		}
		return 0, errors.Wrap(err, fmt.Sprintf("failed to load csv into table %s", tableName))
	}
	return tag.RowsAffected(), nil
}

// RefreshSurvivalData rebuilds the survival_data table from the raw tables.
func (repo *TenureDbRepository) RefreshSurvivalData(ctx context.Context, exec Executor) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := exec.Exec(ctx, "CALL refresh_survival_data()")
	return errors.Wrap(err, "failed to refresh survival data")
}
