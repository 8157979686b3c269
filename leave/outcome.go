/*
outcome.go - Validation outcome and document requirements

PURPOSE:
  Defines the structured result of validating a leave request. The outcome
  keeps three severities strictly apart:

    Errors     - statutory ceilings and structural impossibilities. Block
                 submission. Plain language, always user-facing.
    Warnings   - advisory notices. Never block; surfaced to inform.
    Violations - citation-bearing compliance flags for audit/reporting.
                 May accompany an error or stand alone. NOT a UI concept;
                 a downstream audit consumer reads this list independently.

  Callers must never conflate the lists. In particular a violation is not
  "an error with a citation": soft compliance notices are recorded without
  any blocking error.

DOCUMENT REQUIREMENTS:
  DocumentRequirement entries are constructed fresh on every call and are
  never persisted by this engine; storing actually-uploaded documents is an
  external collaborator's concern. Order is significant - the UI renders
  the checklist in the returned order, most critical first.

SEE ALSO:
  - compliance/documents.go: builds the requirement list
  - compliance/validator.go: populates the outcome
*/
package leave

// =============================================================================
// DOCUMENT REQUIREMENTS
// =============================================================================

// DocumentKind is the closed set of supporting-document kinds.
type DocumentKind string

const (
	DocMedicalCertificate DocumentKind = "medical_certificate"
	DocProof              DocumentKind = "proof_document"
	DocCourtOrder         DocumentKind = "court_order"
	DocAdoptionPapers     DocumentKind = "adoption_papers"
	DocDeathCertificate   DocumentKind = "death_certificate"
	DocSurrogacyAgreement DocumentKind = "surrogacy_agreement"
	DocBirthCertificate   DocumentKind = "birth_certificate"
	DocOther              DocumentKind = "other"
)

// DocumentRequirement describes one supporting document for a request.
// Required entries gate submission (enforced by the caller); non-required
// entries are advisory, including the explicit "no certificate needed"
// notice for short sick leave.
type DocumentRequirement struct {
	Required    bool
	Kind        DocumentKind
	Description string

	// Deadline describes when the document must be submitted, if there is
	// a deadline at all.
	Deadline string

	// Citation is the regulatory reference backing the requirement.
	// Non-empty on every required entry for statutory leave types; this is
	// an audit-trail requirement, not cosmetics.
	Citation string
}

// =============================================================================
// VALIDATION OUTCOME
// =============================================================================

// Outcome is the result of validating a single request. All four lists are
// ordered; a fresh Outcome is produced per call and never mutated after
// being returned.
type Outcome struct {
	Errors     []string
	Warnings   []string
	Violations []string
	Documents  []DocumentRequirement
}

// IsValid reports whether the request may be submitted. It is derived:
// valid iff there are no blocking errors. Warnings and violations never
// affect it.
func (o *Outcome) IsValid() bool { return len(o.Errors) == 0 }

func (o *Outcome) AddError(msg string)   { o.Errors = append(o.Errors, msg) }
func (o *Outcome) AddWarning(msg string) { o.Warnings = append(o.Warnings, msg) }

// AddViolation records a citation-bearing compliance flag without blocking
// the request. Used for soft compliance notices that auditors should see.
func (o *Outcome) AddViolation(citation string) {
	o.Violations = append(o.Violations, citation)
}

// AddBreach records a statutory-ceiling breach: the blocking error and its
// citation are written together in one call so the two lists can never
// drift apart.
func (o *Outcome) AddBreach(msg, citation string) {
	o.Errors = append(o.Errors, msg)
	o.Violations = append(o.Violations, citation)
}
