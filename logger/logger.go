package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	level := logrus.InfoLevel
	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := logrus.ParseLevel(val); err == nil {
			level = parsed
		}
	}
	l.SetLevel(level)

	return l.WithField("service", serviceName)
}
