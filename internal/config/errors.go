package config

import "fmt"

// UnknownTag reports a wire string that does not match any recognized
// enum tag for the named field — the only validation this package does
// beyond what yaml.Unmarshal itself performs.
type UnknownTag struct {
	Field string
	Got   string
}

func (e *UnknownTag) Error() string {
	return fmt.Sprintf("config: unrecognized tag %q for %s", e.Got, e.Field)
}
