package kernel

import (
	"errors"
	"fmt"

	"comptoirs/internal/pkg/errs"
	"comptoirs/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object describing a postal address.
// The city is mandatory; street and postal code may be empty. The zero value
// is invalid and fails validation - use the constructor to create instances.
//
// An order's delivery address is initialized as a copy of the client's
// address; being a value object, the copy evolves independently afterwards.
//
// Example:
//
//	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with the given street, city, and postal code.
// The city must not be empty; street and postal code are optional.
func NewAddress(street string, city string, postalCode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street part of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city part of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code part of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode
}

// String returns a single-line representation of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.postalCode, a.city)
}

func (a *Address) setStreet(street string) error {
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	a.postalCode = postalCode
	return nil
}
