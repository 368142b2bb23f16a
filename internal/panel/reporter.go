package panel

// Reporter surfaces problems to the user. The terminal UI shows modal
// dialogs; the encode command prints to stderr.
type Reporter interface {
	Warn(title, message string)
	Error(title, message string)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Warn(string, string)  {}
func (NopReporter) Error(string, string) {}

// Severity distinguishes warnings from errors in a Report.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Report is one message delivered to a Reporter.
type Report struct {
	Severity Severity
	Title    string
	Message  string
}

// RecordingReporter keeps every report in order.
type RecordingReporter struct {
	Reports []Report
}

func (r *RecordingReporter) Warn(title, message string) {
	r.Reports = append(r.Reports, Report{Severity: SeverityWarning, Title: title, Message: message})
}

func (r *RecordingReporter) Error(title, message string) {
	r.Reports = append(r.Reports, Report{Severity: SeverityError, Title: title, Message: message})
}

// Last returns the most recent report.
func (r *RecordingReporter) Last() (Report, bool) {
	if len(r.Reports) == 0 {
		return Report{}, false
	}
	return r.Reports[len(r.Reports)-1], true
}
