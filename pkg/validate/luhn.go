package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a Luhn-valid card number. Used to sanity check
// the card number carried in top-up/withdrawal payment-method metadata.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
