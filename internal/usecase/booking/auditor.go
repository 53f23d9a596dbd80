package booking

import "github.com/BruksfildServices01/studio-scheduler/internal/audit"

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}
