package projection

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTotalDays is used when the total number of days is not given
const DefaultTotalDays int64 = 365

// Inputs are the raw values a page is generated from
type Inputs struct {
	Day       int64 `yaml:"day"`
	Pot       int64 `yaml:"pot"`
	TotalDays int64 `yaml:"total_days"`
}

// UsageError is returned when the wrong number of positional values is given
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 or 3 arguments (day, pot, [totalDays]), got %d", e.Got)
}

// ValidationError collects every rule the inputs violate
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid inputs: " + strings.Join(e.Problems, "; ")
}

const (
	problemDay       = "day must be a non-negative integer"
	problemPot       = "pot must be a non-negative integer"
	problemTotalDays = "totalDays must be a non-negative integer"
	problemOrder     = "day cannot exceed totalDays"
)

// ParseArgs parses `<day> <pot> [totalDays]`. All problems are reported together.
func ParseArgs(args []string) (Inputs, error) {
	if len(args) < 2 || len(args) > 3 {
		return Inputs{}, &UsageError{Got: len(args)}
	}

	day, dayOk := parseInteger(args[0])
	pot, potOk := parseInteger(args[1])

	totalDays, totalOk := DefaultTotalDays, true
	if len(args) == 3 {
		totalDays, totalOk = parseInteger(args[2])
	}

	var problems []string

	if !dayOk || day < 0 {
		problems = append(problems, problemDay)
	}
	if !potOk || pot < 0 {
		problems = append(problems, problemPot)
	}
	if !totalOk || totalDays < 0 {
		problems = append(problems, problemTotalDays)
	}

	// Ordering is only checked when both sides parsed as integers
	if dayOk && totalOk && day > totalDays {
		problems = append(problems, problemOrder)
	}

	if len(problems) > 0 {
		return Inputs{}, &ValidationError{Problems: problems}
	}

	return Inputs{Day: day, Pot: pot, TotalDays: totalDays}, nil
}

// Validate checks already typed inputs against the same rules as ParseArgs
func (in Inputs) Validate() error {
	var problems []string

	if in.Day < 0 {
		problems = append(problems, problemDay)
	}
	if in.Pot < 0 {
		problems = append(problems, problemPot)
	}
	if in.TotalDays < 0 {
		problems = append(problems, problemTotalDays)
	}
	if in.Day > in.TotalDays {
		problems = append(problems, problemOrder)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// RemainingDays is the number of days left before the tracked event concludes
func (in Inputs) RemainingDays() int64 {
	return in.TotalDays - in.Day
}

func parseInteger(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}
