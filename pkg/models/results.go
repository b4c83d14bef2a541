package models

// ImportError records a rejected import row and why it was skipped.
type ImportError struct {
	Contact ContactImportRow `json:"contact"`
	Reason  string           `json:"reason"`
}

// ImportResult summarizes a contact import. Updated is always zero: imports
// never overwrite existing contacts.
type ImportResult struct {
	Added   int           `json:"added"`
	Skipped int           `json:"skipped"`
	Updated int           `json:"updated"`
	Errors  []ImportError `json:"errors"`
}
