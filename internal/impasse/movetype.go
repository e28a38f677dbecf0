package impasse

import "fmt"

// MoveType tags what combination of primitive actions a Move represents.
// Normal, Transpose, and Impasse are base actions; Crown can stack onto
// any of them or onto BearOff, and BearOff onto Normal or Transpose.
// Combine is the only way to produce a stacked value.
type MoveType int

const (
	Invalid MoveType = iota
	Normal
	Transpose
	Crown
	TransposeCrown
	TransposeBearOff
	BearOff
	Impasse
	BearOffCrown
	ImpasseCrown
)

func (t MoveType) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case Normal:
		return "Normal"
	case Transpose:
		return "Transpose"
	case Crown:
		return "Crown"
	case TransposeCrown:
		return "TransposeCrown"
	case TransposeBearOff:
		return "TransposeBearOff"
	case BearOff:
		return "BearOff"
	case Impasse:
		return "Impasse"
	case BearOffCrown:
		return "BearOffCrown"
	case ImpasseCrown:
		return "ImpasseCrown"
	default:
		return "Invalid"
	}
}

// Combine merges a base move type with an additional tag. Only the
// combinations a legal move can actually produce are defined; anything
// else is a programming error in move generation.
func (t MoveType) Combine(other MoveType) MoveType {
	switch t {
	case Normal:
		return other
	case BearOff:
		if other == Crown {
			return BearOffCrown
		}
	case Transpose:
		switch other {
		case Crown:
			return TransposeCrown
		case BearOff:
			return TransposeBearOff
		}
	case Impasse:
		if other == Crown {
			return ImpasseCrown
		}
	}
	panic(fmt.Sprintf("impasse: cannot combine move type %s with %s", t, other))
}
