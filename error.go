package montecarlo

import (
	"fmt"
	"strings"
)

// ConfigError collects every invalid configuration option
type ConfigError struct {
	Errs []error
}

func (c ConfigError) Error() string {
	msgs := make([]string, 0, len(c.Errs))
	for _, e := range c.Errs {
		msgs = append(msgs, e.Error())
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// RenderError is returned when a plot cannot be built or written to Path
type RenderError struct {
	Path string
	err  error
}

func (r RenderError) Error() string {
	return fmt.Sprintf("unable to render %s: %v", r.Path, r.err)
}

func (r RenderError) Unwrap() error {
	return r.err
}
