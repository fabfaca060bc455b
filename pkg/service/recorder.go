package service

import (
	"code.cloudfoundry.org/clock"
	"github.com/akim-muto/shutdown-task/pkg/models"
	"github.com/akim-muto/shutdown-task/pkg/storage"
	"github.com/pkg/errors"
)

// Logger defines the logging interface for Recorder. Failures are returned, not logged.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Recorder appends one timestamped entry per invocation to a store,
// writing the header first when the store does not exist yet.
type Recorder struct {
	store  storage.Store
	clock  clock.Clock
	logger Logger
	header string
}

func NewRecorder(store storage.Store, clk clock.Clock, logger Logger, header string) *Recorder {
	return &Recorder{
		store:  store,
		clock:  clk,
		logger: logger,
		header: header,
	}
}

// Record writes the entry for args. Any store failure is returned as is, wrapped with
// the step that failed; nothing is retried.
func (r *Recorder) Record(args []string) (models.Entry, error) {
	exists, err := r.store.Exists()
	if err != nil {
		return models.Entry{}, errors.Wrap(err, "check log file")
	}
	if !exists {
		if err := r.store.Create(r.header); err != nil {
			return models.Entry{}, errors.Wrap(err, "create log file")
		}
		r.logger.Debugf("Created log file with header '%s'", r.header)
	}

	entry := models.NewEntry(r.clock.Now(), args)
	if err := r.store.Append(entry.String()); err != nil {
		return models.Entry{}, errors.Wrap(err, "append entry")
	}
	r.logger.Debugf("Recorded %d argument(s)", len(args))
	return entry, nil
}
