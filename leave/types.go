// Package leave defines the shared domain types for the leave compliance
// engine: the closed set of leave-type codes, the request snapshot handed
// in by callers, and the structured validation outcome handed back.
package leave

// =============================================================================
// LEAVE TYPE CODES
// =============================================================================

// Code identifies a leave type. The set is closed: every switch in the
// resolver and validator enumerates all codes, so adding a new code forces
// every dispatch site to be revisited instead of silently no-op-ing.
type Code string

const (
	Annual               Code = "annual"
	Sick                 Code = "sick"
	FamilyResponsibility Code = "family_responsibility"
	Maternity            Code = "maternity"
	Paternity            Code = "paternity"
	Adoption             Code = "adoption"
	Surrogacy            Code = "surrogacy" // commissioning-parent leave
	Compensatory         Code = "compensatory"
	Study                Code = "study"
	Unpaid               Code = "unpaid"
	Other                Code = "other"
)

var registry = map[Code]struct{}{}

func registerCode(c Code) { registry[c] = struct{}{} }

func init() {
	registerCode(Annual)
	registerCode(Sick)
	registerCode(FamilyResponsibility)
	registerCode(Maternity)
	registerCode(Paternity)
	registerCode(Adoption)
	registerCode(Surrogacy)
	registerCode(Compensatory)
	registerCode(Study)
	registerCode(Unpaid)
	registerCode(Other)
}

// Known reports whether c is one of the registered leave-type codes.
func Known(c Code) bool {
	_, ok := registry[c]
	return ok
}

// Codes returns the registered codes. Order is unspecified.
func Codes() []Code {
	out := make([]Code, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	return out
}

// Statutory reports whether the leave type is backed by a statutory
// entitlement (and therefore carries regulatory citations on its document
// requirements and ceiling breaches).
func (c Code) Statutory() bool {
	switch c {
	case Sick, Annual, FamilyResponsibility, Maternity, Paternity, Adoption, Surrogacy:
		return true
	case Compensatory, Study, Unpaid, Other:
		return false
	default:
		return false
	}
}

// =============================================================================
// GENDER
// =============================================================================

// Gender is the requester's recorded gender, used only by rules with a
// statutory gender constraint (maternity leave).
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
)
