// Package renderer turns book data into markdown reports for the `pfs`
// command-line tool. It is purely presentational: every number it prints was
// computed by the playerfolio package.
package renderer

import (
	"fmt"

	"github.com/rosterfun/playerfolio"
)

// signed formats an amount with an explicit sign, "-" for zero, for P&L
// columns where the direction is the point.
func signed(m playerfolio.Money) string { return m.SignedString() }

// count formats a share quantity.
func count(q playerfolio.Quantity) string { return q.String() }

// title builds the standard "X for <book>" report heading.
func title(what, book string) string {
	if book == "" {
		return what
	}
	return fmt.Sprintf("%s for %s", what, book)
}
