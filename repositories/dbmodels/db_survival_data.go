package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

type DBSurvivalRecord struct {
	ClientId          int64         `db:"client_id"`
	ApplicationId     int64         `db:"application_id"`
	AppliedAt         pgtype.Date   `db:"applied_at"`
	ClosedAt          pgtype.Date   `db:"closed_at"`
	ContractPeriod    pgtype.Int4   `db:"contract_period"`
	PaidAmount        pgtype.Float8 `db:"paid_amount"`
	InitialAmount     pgtype.Float8 `db:"initial_amount"`
	ExpectedInterest  pgtype.Float8 `db:"expected_interest"`
	RiskClass         pgtype.Text   `db:"risk_class"`
	ServedDays        pgtype.Int4   `db:"served_days"`
	CreditScore       pgtype.Int4   `db:"credit_score"`
	PaidLoansCount    pgtype.Int4   `db:"paid_loans_count"`
	ApplicationsCount pgtype.Int4   `db:"applications_count"`
	DpdCount          pgtype.Int4   `db:"dpd_count"`
	MaxDpd            pgtype.Int4   `db:"max_dpd"`
	Age               pgtype.Int4   `db:"age"`
	Gender            pgtype.Text   `db:"gender"`
	MonthlySalary     pgtype.Float8 `db:"monthly_salary"`
	VehiclesCount     pgtype.Int4   `db:"vehicles_count"`
	EnforcementCount  pgtype.Int4   `db:"enforcement_count"`
	DependentsCount   pgtype.Int4   `db:"dependents_count"`
	BeenMarried       pgtype.Int4   `db:"been_married"`
	EnforcementSum    pgtype.Float8 `db:"enforcement_sum"`
	MobileOperator    pgtype.Text   `db:"mobile_operator"`
	Region            pgtype.Text   `db:"region"`
	Tenure            int           `db:"tenure"`
	Event             bool          `db:"event"`
}

const TABLE_SURVIVAL_DATA = "survival_data"

var ColumnsSelectSurvivalRecord = utils.ColumnList[DBSurvivalRecord]()

// AdaptSurvivalDataset pivots the row-major survival_data records into the
// column-major dataset the feature preparation step consumes. Numeric columns
// carry missing values as zero; date columns come through as strings so the
// feature configuration can drop them by name.
func AdaptSurvivalDataset(records []DBSurvivalRecord) models.SurvivalDataset {
	n := len(records)
	dataset := models.SurvivalDataset{
		NumRows: n,
		Numeric: map[string][]float64{
			"client_id":          make([]float64, n),
			"application_id":     make([]float64, n),
			"contract_period":    make([]float64, n),
			"paid_amount":        make([]float64, n),
			"initial_amount":     make([]float64, n),
			"expected_interest":  make([]float64, n),
			"served_days":        make([]float64, n),
			"credit_score":       make([]float64, n),
			"paid_loans_count":   make([]float64, n),
			"applications_count": make([]float64, n),
			"dpd_count":          make([]float64, n),
			"max_dpd":            make([]float64, n),
			"age":                make([]float64, n),
			"monthly_salary":     make([]float64, n),
			"vehicles_count":     make([]float64, n),
			"enforcement_count":  make([]float64, n),
			"dependents_count":   make([]float64, n),
			"been_married":       make([]float64, n),
			"enforcement_sum":    make([]float64, n),
			"tenure":             make([]float64, n),
			"event":              make([]float64, n),
		},
		Categorical: map[string][]string{
			"risk_class":      make([]string, n),
			"gender":          make([]string, n),
			"mobile_operator": make([]string, n),
			"region":          make([]string, n),
			"applied_at":      make([]string, n),
			"closed_at":       make([]string, n),
		},
	}

	for i, record := range records {
		dataset.Numeric["client_id"][i] = float64(record.ClientId)
		dataset.Numeric["application_id"][i] = float64(record.ApplicationId)
		dataset.Numeric["contract_period"][i] = float64(record.ContractPeriod.Int32)
		dataset.Numeric["paid_amount"][i] = record.PaidAmount.Float64
		dataset.Numeric["initial_amount"][i] = record.InitialAmount.Float64
		dataset.Numeric["expected_interest"][i] = record.ExpectedInterest.Float64
		dataset.Numeric["served_days"][i] = float64(record.ServedDays.Int32)
		dataset.Numeric["credit_score"][i] = float64(record.CreditScore.Int32)
		dataset.Numeric["paid_loans_count"][i] = float64(record.PaidLoansCount.Int32)
		dataset.Numeric["applications_count"][i] = float64(record.ApplicationsCount.Int32)
		dataset.Numeric["dpd_count"][i] = float64(record.DpdCount.Int32)
		dataset.Numeric["max_dpd"][i] = float64(record.MaxDpd.Int32)
		dataset.Numeric["age"][i] = float64(record.Age.Int32)
		dataset.Numeric["monthly_salary"][i] = record.MonthlySalary.Float64
		dataset.Numeric["vehicles_count"][i] = float64(record.VehiclesCount.Int32)
		dataset.Numeric["enforcement_count"][i] = float64(record.EnforcementCount.Int32)
		dataset.Numeric["dependents_count"][i] = float64(record.DependentsCount.Int32)
		dataset.Numeric["been_married"][i] = float64(record.BeenMarried.Int32)
		dataset.Numeric["enforcement_sum"][i] = record.EnforcementSum.Float64
		dataset.Numeric["tenure"][i] = float64(record.Tenure)
		if record.Event {
			dataset.Numeric["event"][i] = 1
		}

		dataset.Categorical["risk_class"][i] = record.RiskClass.String
		dataset.Categorical["gender"][i] = record.Gender.String
		dataset.Categorical["mobile_operator"][i] = record.MobileOperator.String
		dataset.Categorical["region"][i] = record.Region.String
		if record.AppliedAt.Valid {
			dataset.Categorical["applied_at"][i] = record.AppliedAt.Time.Format(time.DateOnly)
		}
		if record.ClosedAt.Valid {
			dataset.Categorical["closed_at"][i] = record.ClosedAt.Time.Format(time.DateOnly)
		}
	}

	return dataset
}
