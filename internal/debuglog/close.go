package debuglog

import (
	"io"
	"log"
)

// RunAndLog executes fn and logs a label-prefixed error if it fails.
func RunAndLog(label string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("%s: %v", label, err)
	}
}

// CloseWithLog closes c and logs a failure under name. A nil closer is ignored.
func CloseWithLog(name string, c io.Closer) {
	if c == nil {
		return
	}
	RunAndLog(name, c.Close)
}
