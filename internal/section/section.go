package section

// Section is a named view within a dashboard, selected through the "tab"
// query parameter.
type Section string

const (
	Salons    Section = "saloni"
	Employees Section = "zaposlenici"
	Bookings  Section = "rezervacije"
)

// QueryParam is the query parameter carrying the active section.
const QueryParam = "tab"

// AllowList is the ordered set of sections a page accepts. The first member
// is the default.
type AllowList []Section

var (
	AdminSections    = AllowList{Salons, Employees, Bookings}
	CustomerSections = AllowList{Salons, Bookings}
)

// Default returns the canonical section of the list.
func (l AllowList) Default() Section {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Contains reports whether s is allowed.
func (l AllowList) Contains(s Section) bool {
	for _, allowed := range l {
		if allowed == s {
			return true
		}
	}
	return false
}

// Resolve returns the requested section when it is allowed and the default
// otherwise. The second result reports whether the resolved value differs
// from the literal input, in which case the caller must overwrite the
// persisted tab reference. Resolving an already resolved value never
// reports a change.
func (l AllowList) Resolve(requested string) (Section, bool) {
	if l.Contains(Section(requested)) {
		return Section(requested), false
	}
	def := l.Default()
	return def, string(def) != requested
}

// Label returns the navigation label of s.
func Label(s Section) string {
	switch s {
	case Salons:
		return "Saloni"
	case Employees:
		return "Zaposlenici"
	case Bookings:
		return "Rezervacije"
	}
	return string(s)
}
