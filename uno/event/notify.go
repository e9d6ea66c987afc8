package event

import "github.com/ratel-online/core/log"

// notify calls one listener. A panicking listener is logged and the remaining listeners still run.
func notify(name string, call func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("%s listener panicked: %v\n", name, r)
		}
	}()
	call()
}
