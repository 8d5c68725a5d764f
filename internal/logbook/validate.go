package logbook

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies one input field on the profile or flight entry forms.
type Field string

const (
	FieldFirstName         Field = "first_name"
	FieldLastName          Field = "last_name"
	FieldAddress           Field = "address"
	FieldMobilePhone       Field = "mobile_phone"
	FieldDateOfBirth       Field = "date_of_birth"
	FieldCertificateNumber Field = "certificate_number"

	FieldDate         Field = "date"
	FieldType         Field = "type"
	FieldRegistration Field = "registration"
	FieldRoute        Field = "route"
	FieldTime         Field = "time"
)

// Violation is the kind of validation failure on a single field.
type Violation string

const (
	ViolationRequired    Violation = "required"
	ViolationInvalidTime Violation = "invalid time (expected HH:MM)"
	ViolationInvalidDate Violation = "invalid date (expected YYYY-MM-DD)"
)

// FieldErrors maps each failing field to its violation. It is returned as a
// plain error so callers can report failures inline, per field.
type FieldErrors map[Field]Violation

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f, v := range e {
		fields = append(fields, fmt.Sprintf("%s: %s", f, v))
	}
	sort.Strings(fields)
	return "invalid input: " + strings.Join(fields, "; ")
}

// errOrNil converts an empty FieldErrors into a nil error. Returning a typed
// nil map as error would never compare equal to nil.
func (e FieldErrors) errOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
