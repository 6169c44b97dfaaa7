package optimizer

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/optimize"
)

// Method names a gonum/optimize local search.
type Method string

const (
	NelderMead Method = "nelder-mead"
	BFGS       Method = "bfgs"
	LBFGS      Method = "lbfgs"
)

// Methods lists the supported methods in display order.
func Methods() []Method { return []Method{NelderMead, BFGS, LBFGS} }

// ParseMethod accepts a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if _, err := m.build(); err != nil {
		return "", err
	}

	return m, nil
}

// build returns a fresh gonum method; methods carry state and are never shared.
func (m Method) build() (optimize.Method, error) {
	switch m {
	case NelderMead:
		return &optimize.NelderMead{}, nil
	case BFGS:
		return &optimize.BFGS{}, nil
	case LBFGS:
		return &optimize.LBFGS{}, nil
	default:
		return nil, fmt.Errorf("method %q: %w", string(m), ErrUnknownMethod)
	}
}

func (m Method) needsGradient() bool { return m == BFGS || m == LBFGS }

// Options controls Search.
type Options struct {
	Method        Method
	Restarts      int
	Workers       int // <= 0 means runtime.GOMAXPROCS(0)
	MaxIterations int // major iterations per restart; 0 means no limit
	Seed          int64
	Logger        zerolog.Logger
}

// DefaultOptions returns Nelder–Mead with 8 restarts, seed 1 and a silent logger.
func DefaultOptions() Options {
	return Options{
		Method:        NelderMead,
		Restarts:      8,
		Workers:       runtime.GOMAXPROCS(0),
		MaxIterations: 2000,
		Seed:          1,
		Logger:        zerolog.Nop(),
	}
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}
