package nhlweb

import "time"

const (
	providerName       = "nhlweb"
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	scorePath          = "/score/now"
	schedulePathFmt    = "/club-schedule/%s/week/now"
	maxErrorBody       = 512
)

// startTimeLayouts are the timestamp layouts accepted for feed start times.
var startTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04Z07:00"}
