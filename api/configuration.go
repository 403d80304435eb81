package api

import (
	"time"
)

type Configuration struct {
	Env              string
	AppName          string
	AppVersion       string
	Port             string
	DashboardUrl     string
	DefaultTimeout   time.Duration
	EnablePrometheus bool
}
