package volby

// MunicipalityRef identifies one municipality row on an index page.
// Refs are produced once by the index extractor and never mutated.
type MunicipalityRef struct {
	// Code is the 6-digit municipality code.
	Code string

	// Name is the municipality name as printed on the index page.
	Name string

	// DetailURL is the absolute URL of the municipality detail page.
	DetailURL string
}

// Validate returns an error if the ref contains invalid fields.
func (r *MunicipalityRef) Validate() error {
	if len(r.Code) != 6 {
		return Errorf(EINVALID, "municipality code must be 6 digits, got %q", r.Code)
	}
	for _, c := range r.Code {
		if c < '0' || c > '9' {
			return Errorf(EINVALID, "municipality code must be 6 digits, got %q", r.Code)
		}
	}
	if r.DetailURL == "" {
		return Errorf(EINVALID, "municipality detail URL required")
	}
	return nil
}

// Summary holds the turnout figures of one municipality.
type Summary struct {
	Code       string
	Location   string
	Registered int
	Envelopes  int
	Valid      int
}

// PartyVotes maps party name to vote count for one municipality.
// An empty map is valid.
type PartyVotes map[string]int

// Detail is the full extraction result of one detail page.
type Detail struct {
	Registered int
	Envelopes  int
	Valid      int
	Parties    PartyVotes
}

// Result is the outcome of processing one municipality. A failed fetch or
// extraction yields a zero-filled Summary, an empty party map and a
// non-nil Err, so callers can tell real zeros from placeholders.
type Result struct {
	Ref     MunicipalityRef
	Summary Summary
	Parties PartyVotes
	Err     error
}

// Failed reports whether the result is a zero-filled placeholder.
func (r *Result) Failed() bool {
	return r.Err != nil
}
