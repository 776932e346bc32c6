package schedule

// Task is one scheduled collection: a city and whether the target day
// is today (in the reference zone) or tomorrow.
type Task struct {
	City  string
	Today bool
}

// Window describes one city's polling hours in the reference zone.
//
// In the evening, after the city's local midnight has not yet arrived
// but its next-day contracts are live, the city is polled for
// tomorrow's settlement from TomorrowFrom through hour 23. From
// midnight it is polled for today's settlement through TodayUntil
// (inclusive). LA shares the reference zone, so it has no evening
// tomorrow window.
type Window struct {
	TomorrowFrom int // First evening hour polling tomorrow; -1 for none
	TodayUntil   int // Last hour (inclusive) polling today
}

// windows documents each city's rollover, derived from its local
// midnight and mid-afternoon cutoff converted to the reference zone:
// NY/MIA/PHIL roll at 9pm PT and close out at 1pm PT, CHI/AUS at
// 10pm/2pm, DEN at 11pm/3pm, LA at midnight/4pm.
var windows = map[string]Window{
	"ny":   {TomorrowFrom: 20, TodayUntil: 13},
	"mia":  {TomorrowFrom: 20, TodayUntil: 13},
	"phil": {TomorrowFrom: 20, TodayUntil: 13},
	"chi":  {TomorrowFrom: 22, TodayUntil: 14},
	"aus":  {TomorrowFrom: 22, TodayUntil: 14},
	"den":  {TomorrowFrom: 23, TodayUntil: 15},
	"la":   {TomorrowFrom: -1, TodayUntil: 16},
}

// table maps reference-zone hour to that hour's collection tasks.
// Hand-authored to match windows above; schedule_test asserts they
// agree. Hours 17-19 have nothing scheduled.
var table = map[int][]Task{
	20: {{"ny", false}, {"mia", false}, {"phil", false}},
	21: {{"ny", false}, {"mia", false}, {"phil", false}},
	22: {{"ny", false}, {"mia", false}, {"phil", false}, {"chi", false}, {"aus", false}},
	23: {{"ny", false}, {"mia", false}, {"phil", false}, {"chi", false}, {"aus", false}, {"den", false}},
	0:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	1:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	2:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	3:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	4:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	5:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	6:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	7:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	8:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	9:  {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	10: {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	11: {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	12: {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	13: {{"ny", true}, {"mia", true}, {"phil", true}, {"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	14: {{"chi", true}, {"aus", true}, {"den", true}, {"la", true}},
	15: {{"den", true}, {"la", true}},
	16: {{"la", true}},
}

// TasksForHour returns the tasks scheduled for the given reference-zone
// hour. Hours with nothing scheduled return nil, which is not an error.
func TasksForHour(hour int) []Task {
	tasks := table[hour]
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// Windows returns each city's documented polling window. Exposed so
// tests can assert the static table matches.
func Windows() map[string]Window {
	out := make(map[string]Window, len(windows))
	for k, v := range windows {
		out[k] = v
	}
	return out
}
