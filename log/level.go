package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

//go:generate go tool stringer -type=Level -linecomment

// Level mirrors logrus levels, from the most to the least severe.
type Level uint8

const (
	PanicLevel Level = iota // panic
	FatalLevel              // fatal
	ErrorLevel              // error
	WarnLevel               // warning
	InfoLevel               // info
	DebugLevel              // debug
)

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}
