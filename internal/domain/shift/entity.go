package shift

// Shift is a configured work-shift window. WorkStart and WorkEnd are
// time-of-day strings ("09:00:00"); they are parsed at the point of use
// because the catalog does not guarantee well-formed values.
type Shift struct {
	ID        string
	Name      string
	WorkStart string
	WorkEnd   string
}
