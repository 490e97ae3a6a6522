package utils

import "github.com/sirupsen/logrus"

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"

	formatJSON = "json"
)

// Log доступен сразу, InitLogger только перенастраивает его
var Log = logrus.New()

func InitLogger(logLevel, logFormat string) *logrus.Logger {
	Log = logrus.New()

	switch logFormat {
	case formatJSON:
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch logLevel {
	case debug:
		Log.SetLevel(logrus.DebugLevel)
	case warning:
		Log.SetLevel(logrus.WarnLevel)
	case info:
		Log.SetLevel(logrus.InfoLevel)
	case error_:
		Log.SetLevel(logrus.ErrorLevel)
	case fatal:
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.SetLevel(logrus.ErrorLevel)
	}

	return Log
}
