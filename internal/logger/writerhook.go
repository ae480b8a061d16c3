package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// writerHook formats entries of the given levels onto w.
type writerHook struct {
	lock      sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func newWriterHook(w io.Writer, formatter logrus.Formatter, levels []logrus.Level) *writerHook {
	return &writerHook{
		w:         w,
		formatter: formatter,
		levels:    levels,
	}
}

func (h *writerHook) Levels() []logrus.Level {
	return h.levels
}

func (h *writerHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.lock.Lock()
	defer h.lock.Unlock()
	_, err = h.w.Write(line)
	return err
}
