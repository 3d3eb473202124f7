package blake2f

import "fmt"

// InputLengthError is returned when an encoded input is not exactly InputSize
// bytes long.
type InputLengthError struct {
	Expected int
	Actual   int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("blake2f: input length should be exactly %d bytes, got %d",
		e.Expected, e.Actual)
}

// InvalidFinalFlagError is returned when the final block indicator of an
// encoded input is neither 0 nor 1.
type InvalidFinalFlagError struct {
	Flag byte
}

func (e *InvalidFinalFlagError) Error() string {
	return fmt.Sprintf("blake2f: incorrect final block indicator flag, got %d", e.Flag)
}

// DimensionError is returned when an argument passed directly to Compress has
// the wrong length.
type DimensionError struct {
	Field    string
	Unit     string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("blake2f: %s should have exactly %d %s, got %d",
		e.Field, e.Expected, e.Unit, e.Actual)
}

func checkDimension(field, unit string, expected, actual int) error {
	if expected != actual {
		return &DimensionError{
			Field:    field,
			Unit:     unit,
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}
