package logger

import (
	"io"
	"os"
	"time"

	"dishseed/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging points logger at stdout and, when a log path is configured,
// at a rotating file as well.
func SetupLogging(conf config.Config, logger *log.Logger) error {
	var out io.Writer = os.Stdout
	if conf.Logging.LogPath != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   conf.Logging.LogPath,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28,   //days
			Compress:   true, // lumberjack disables it by default
		})
	}
	logger.SetOutput(out)
	level, err := log.ParseLevel(conf.Logging.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	return nil
}
