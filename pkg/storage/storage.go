package storage

// Store defines the operations the recorder needs on the argument log.
type Store interface {
	// Exists reports whether anything is already present at the log location.
	Exists() (bool, error)
	// Create creates (or truncates) the log and writes header as its first line.
	Create(header string) error
	// Append adds line to the end of the log. A trailing newline is added.
	Append(line string) error
}
