package salary

// Kind says how a derived salary was produced.
type Kind int

const (
	// Computed means the delta was added to a parsed base range.
	Computed Kind = iota
	// Verbatim means the delta string was used as-is.
	Verbatim
)

func (k Kind) String() string {
	switch k {
	case Computed:
		return "computed"
	case Verbatim:
		return "verbatim"
	default:
		return "unknown"
	}
}

// Derivation is the salary of a generated stage together with how it was obtained
type Derivation struct {
	Salary string
	Kind   Kind
	Range  Range
	// Err is set when a verbatim result came from a parse failure rather than
	// from a non-numeric delta or a missing base.
	Err error
}

// Derive applies delta to base. The delta is used verbatim when base is
// empty, when delta is an equity marker or not additive, or when either side
// fails to parse.
func Derive(base, delta string) Derivation {
	verbatim := Derivation{Salary: delta, Kind: Verbatim}

	if base == "" || IsEquity(delta) || !IsAdditive(delta) {
		return verbatim
	}

	baseRange, err := ParseRange(base)
	if err != nil {
		verbatim.Err = err
		return verbatim
	}

	deltaRange, err := ParseDelta(delta)
	if err != nil {
		verbatim.Err = err
		return verbatim
	}

	sum := baseRange.Add(deltaRange)
	return Derivation{Salary: sum.String(), Kind: Computed, Range: sum}
}
