package cli

import (
	"fmt"
	"strings"
)

type invalidValueError struct {
	flag    string
	value   string
	allowed []string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid --%s value %q (want one of: %s)", e.flag, e.value, strings.Join(e.allowed, ", "))
}

func errInvalidValue(flag, value string, allowed ...string) error {
	return invalidValueError{flag: flag, value: value, allowed: allowed}
}

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %s", e.topic)
}
