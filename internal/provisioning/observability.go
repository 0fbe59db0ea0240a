package provisioning

import "log"

// Observer receives progress and warning output from provisioning phases.
type Observer interface {
	// Printf reports normal progress.
	Printf(format string, v ...interface{})

	// Warnf reports a non-fatal condition, such as deleting a resource
	// that is already gone.
	Warnf(format string, v ...interface{})
}

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Warnf implements Observer.
func (o *ConsoleObserver) Warnf(format string, v ...interface{}) {
	log.Printf("Warning: "+format, v...)
}
