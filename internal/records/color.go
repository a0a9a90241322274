// Package records holds a sample schema, the codecs ferryc generates for
// it and the end to end tests that exercise them.
package records

//go:generate go run ../../cmd/ferryc generate -pkg records -o records_ferry.go records.fsch

// Color is declared by hand; the schema refers to it as an enum.
type Color int32

const (
	ColorFirst Color = iota
	ColorSecond
	ColorThird
)

func (c Color) String() string {
	switch c {
	case ColorFirst:
		return "FIRST"
	case ColorSecond:
		return "SECOND"
	case ColorThird:
		return "THIRD"
	}
	return "Color(?)"
}
