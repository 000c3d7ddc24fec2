// Package automaxprocs sizes GOMAXPROCS to the container CPU quota for the API server.
package automaxprocs

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	mu     sync.Mutex
	revert func()
)

// Init sets GOMAXPROCS to the Linux container CPU quota, a no-op elsewhere.
// A GOMAXPROCS environment variable is honored as-is.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	log := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", Current()),
	)
	printf := func(format string, v ...any) {
		// maxprocs passes the new value except when undoing
		if val, ok := utils.Optional(v); ok {
			if _, set := os.LookupEnv("GOMAXPROCS"); set {
				val = Current()
			}
			log = log.With(slogx.Any("set_maxprocs", val))
		}
		log.Info(fmt.Sprintf(format, v...))
	}

	undo, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return errors.Wrap(err, "can't set GOMAXPROCS")
	}
	revert = undo
	return nil
}

// Undo restores GOMAXPROCS to the value before [Init] and returns the current value.
func Undo() int {
	mu.Lock()
	defer mu.Unlock()
	if revert != nil {
		revert()
		revert = nil
	}
	return Current()
}

// Current returns the current value of GOMAXPROCS.
func Current() int {
	return runtime.GOMAXPROCS(0)
}
