package catelog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidAttributes = errors.New("invalid attributes")
var ErrInvalidDate = errors.New("invalid date. Format should be yyyy-mm-dd")
var ErrInvalidGenre = errors.New("invalid genre")

// NotFoundError is returned when no album exists for ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no album with id: %d was found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidAttributesError lists the album fields that failed validation, in
// validation order.
type InvalidAttributesError struct {
	Fields []string
}

func (e *InvalidAttributesError) Error() string {
	return "the following attributes are invalid: [" + strings.Join(e.Fields, " ") + "]"
}

// Is makes errors.Is(err, ErrInvalidAttributes) hold.
func (e *InvalidAttributesError) Is(target error) bool {
	return target == ErrInvalidAttributes
}
