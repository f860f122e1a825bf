package logger

import "sync"

var once sync.Once

// WarnOnce tells the user, a single time per process, that predictions
// are not being journaled. It is filtered like any other WARN line.
func WarnOnce(reason error) {
	if level > WARN {
		return
	}
	once.Do(func() {
		Warn("⚠️ Prediction journal unavailable (%v). Predictions will not be recorded.", reason)
		Warn("🗂  Set TONALITY_DB to a writable path to enable `tonality history`.")
	})
}
