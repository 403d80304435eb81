package models

// job that runs the survival prediction pipeline end to end
type PredictionRunArgs struct {
	TimePeriods            int  `json:"time_periods"`
	EliminateInsignificant bool `json:"eliminate_insignificant"`
}

func (PredictionRunArgs) Kind() string { return "prediction_run" }
