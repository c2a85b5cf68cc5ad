package log

import (
	"time"

	"go.uber.org/zap"
)

func String(key, value string) Field {
	return zap.String(key, value)
}

func Int(key string, value int) Field {
	return zap.Int(key, value)
}

func Any(key string, value interface{}) Field {
	return zap.Any(key, value)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

func Time(key string, value time.Time) Field {
	return zap.Time(key, value)
}
