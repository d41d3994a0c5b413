package util

import (
	"golang.org/x/text/unicode/norm"
)

// FixUnicode normalizes decoded text to NFC before it is shown to
// the user.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}
