package models

import (
	"fmt"
	"time"

	"github.com/akim-muto/shutdown-task/pkg/render"
)

// TimestampLayout is the second-resolution local time format of an entry.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one line of the argument log.
type Entry struct {
	Time time.Time // Local time of the invocation
	Args []string  // Invocation arguments, program name excluded
}

func NewEntry(t time.Time, args []string) Entry {
	return Entry{Time: t.Local(), Args: args}
}

// String renders the entry as it is written to the log file, without the trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] Args: %s", e.Time.Format(TimestampLayout), render.List(e.Args))
}
