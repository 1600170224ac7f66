package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logrus instance. It writes to stderr at info
// level until Init is called.
var Logger = logrus.New()

var once sync.Once

type Options struct {
	Level string
	// File, when set, adds a rotated log file next to stderr
	File    string
	Service string
}

// Init configures Logger once; later calls are ignored.
func Init(opts Options) {
	once.Do(func() {
		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		Logger.SetLevel(level)
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})

		var out io.Writer = os.Stderr
		if opts.File != "" {
			out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
		Logger.SetOutput(out)

		if opts.Service != "" {
			Logger.AddHook(serviceHook(opts.Service))
		}
		if err != nil && opts.Level != "" {
			Logger.Warnf("⚠️  Unknown log level %q, using info", opts.Level)
		}
	})
}

type serviceHook string

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = string(h)
	return nil
}
