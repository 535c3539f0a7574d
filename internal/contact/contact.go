// Package contact defines the contact record, its validation rules and
// search matching.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// NotAvailable is stored in place of an optional field left empty.
const NotAvailable = "N/A"

// ErrValidation indicates a required field is missing or the email is malformed.
var ErrValidation = errors.New("contact: validation failed")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Contact is a single stored record.
// ID is assigned in memory by the store and never written to disk.
type Contact struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Input holds the raw field values collected by a shell.
type Input struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// ValidEmail reports whether email is empty or looks like local@domain.tld.
func ValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// Validate checks that name and phone are present and that email, if given, is well formed.
func (in Input) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if !ValidEmail(in.Email) {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, in.Email)
	}
	return nil
}

// Normalize builds a Contact with the given id, replacing empty optional
// fields with NotAvailable. It does not validate.
func (in Input) Normalize(id string) Contact {
	return Contact{
		ID:      id,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   orNotAvailable(in.Email),
		Address: orNotAvailable(in.Address),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// Input returns the editable field values of c, mapping NotAvailable back to "".
func (c Contact) Input() Input {
	return Input{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   field(c.Email),
		Address: field(c.Address),
	}
}

func field(s string) string {
	if s == NotAvailable {
		return ""
	}
	return s
}

// Summary returns the one-line "name - phone" form used in list views.
func (c Contact) Summary() string {
	return c.Name + " - " + c.Phone
}

// Matches reports whether query is a case-insensitive substring of the name
// or a case-sensitive substring of the phone.
func (c Contact) Matches(query string) bool {
	if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
		return true
	}
	return strings.Contains(c.Phone, query)
}

// Query picks the search text from the name and phone fields of a form.
// The name wins when both are filled.
func Query(name, phone string) string {
	if name != "" {
		return name
	}
	return phone
}
