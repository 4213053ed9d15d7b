package timerange

import (
	"fmt"
	"strconv"
	"strings"
)

// Annotation is a labelled point in time, parsed from "time:label".
type Annotation struct {
	Time  float64
	Label string
}

// ParseAnnotation parses a "time:label" pair. Exactly one ':' is allowed.
func ParseAnnotation(s string) (Annotation, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Annotation{}, fmt.Errorf("annotation %q should be 'time:label'", s)
	}
	t, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Annotation{}, fmt.Errorf("invalid annotation time %q", parts[0])
	}
	return Annotation{Time: t, Label: parts[1]}, nil
}
