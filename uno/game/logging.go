package game

import "sync/atomic"

var verbose int32

// SetVerbose switches the engine's progress logging. It is off by default,
// since the log writes to stdout alongside the console.
func SetVerbose(on bool) {
	var value int32
	if on {
		value = 1
	}
	atomic.StoreInt32(&verbose, value)
}

func Verbose() bool {
	return atomic.LoadInt32(&verbose) == 1
}
