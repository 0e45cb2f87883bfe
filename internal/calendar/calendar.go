package calendar

import "time"

// GridSize is the number of cells in a month grid: six full weeks.
const GridSize = 42

// DateFormat is the ISO-8601 calendar date layout used for Day.Date.
const DateFormat = "2006-01-02"

var monthNames = [12]string{
	"Siječanj", "Veljača", "Ožujak", "Travanj", "Svibanj", "Lipanj",
	"Srpanj", "Kolovoz", "Rujan", "Listopad", "Studeni", "Prosinac",
}

var weekdayLabels = [7]string{"P", "U", "S", "Č", "P", "S", "N"}

// Day is one cell of the month grid
type Day struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
	Day            int    `json:"day"`
}

// Build returns the 42-cell grid for the given year and zero-based month.
// The grid starts on the Monday on or before the first of the month and is
// padded with days of the adjacent months. Months outside 0..11 roll over
// into the neighbouring years.
func Build(year, month int, today time.Time) []Day {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	todayStr := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).Format(DateFormat)

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(DateFormat)
		days = append(days, Day{
			Date:           date,
			IsCurrentMonth: d.Month() == first.Month() && d.Year() == first.Year(),
			IsToday:        date == todayStr,
			Day:            d.Day(),
		})
	}
	return days
}

// View identifies the month shown by the calendar. Month is zero-based.
type View struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ViewOf returns the view containing t.
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Normalize folds an out-of-range month into the year.
func (v View) Normalize() View {
	first := time.Date(v.Year, time.Month(v.Month+1), 1, 0, 0, 0, 0, time.UTC)
	return ViewOf(first)
}

// Prev returns the view of the previous month.
func (v View) Prev() View {
	return View{Year: v.Year, Month: v.Month - 1}.Normalize()
}

// Next returns the view of the following month.
func (v View) Next() View {
	return View{Year: v.Year, Month: v.Month + 1}.Normalize()
}

// IsZero reports whether the view was never set.
func (v View) IsZero() bool {
	return v.Year == 0
}

// Days builds the grid for this view.
func (v View) Days(today time.Time) []Day {
	return Build(v.Year, v.Month, today)
}

// MonthName returns the Croatian name of the view's month.
func (v View) MonthName() string {
	return monthNames[v.Normalize().Month]
}

// Weekdays returns a fresh copy of the column headers, Monday first.
func Weekdays() []string {
	return append([]string(nil), weekdayLabels[:]...)
}

// Today returns today's date in loc formatted as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return now.Format(DateFormat)
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
