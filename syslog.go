package bmerge

import (
	syslog "github.com/RackSec/srslog"
	"github.com/sirupsen/logrus"
)

// SyslogHook is a logrus hook that sends log entries to syslog.
type SyslogHook struct {
	writer    *syslog.Writer
	levels    []logrus.Level
	formatter logrus.Formatter
}

var _ logrus.Hook = &SyslogHook{}

type SyslogOptions struct {
	// "udp", "tcp", "unix". Empty for the local syslog server.
	Network string

	// Remote address, defaults to local syslog server
	Address string

	// Syslog tag
	Tag string

	// Entries of this level and more severe are sent. Defaults to warning.
	Level logrus.Level
}

// NewSyslogHook connects to syslog.
func NewSyslogHook(opt SyslogOptions) (*SyslogHook, error) {
	if opt.Level == logrus.PanicLevel {
		opt.Level = logrus.WarnLevel
	}
	writer, err := syslog.Dial(opt.Network, opt.Address, syslog.LOG_WARNING|syslog.LOG_DAEMON, opt.Tag)
	if err != nil {
		return nil, err
	}
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= opt.Level {
			levels = append(levels, l)
		}
	}
	return &SyslogHook{
		writer:    writer,
		levels:    levels,
		formatter: &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true},
	}, nil
}

func (h *SyslogHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SyslogHook) Fire(e *logrus.Entry) error {
	b, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	msg := string(b)
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return h.writer.Crit(msg)
	case logrus.ErrorLevel:
		return h.writer.Err(msg)
	case logrus.WarnLevel:
		return h.writer.Warning(msg)
	case logrus.InfoLevel:
		return h.writer.Info(msg)
	default:
		return h.writer.Debug(msg)
	}
}

func (h *SyslogHook) Close() error {
	return h.writer.Close()
}
