package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// Client is the contact card served to outreach operators.
type Client struct {
	ClientId       int64
	Gender         string
	BirthDate      *time.Time
	Phone          string
	MobileOperator string
	Email          null.String
}
