package metadata

import "time"

var now = time.Now

func getTimestamp() (int64, time.Time) {
	current := now().UTC()
	return current.Unix(), current
}
