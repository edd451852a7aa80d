// Package core contains the personnummer domain contracts, entities, and
// the validation pipeline. Leaf packages (birthdate, luhn, county) must not
// depend on this package; core orchestrates them.
package core
