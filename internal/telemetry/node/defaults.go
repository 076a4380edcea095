package node

import "time"

const (
	defaultPrefill       = 100
	defaultWorkerCount   = 8
	defaultRPS           = 50
	pollInterval         = 5 * time.Second
	failureSleepDuration = 10 * time.Second
)
