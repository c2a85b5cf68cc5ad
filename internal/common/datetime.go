package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

// TIMEZONE
const (
	TimezoneBangkok = "Asia/Bangkok"
)

func Now() time.Time {
	return time.Now().UTC()
}
