// Package domain holds the view models the page templates render
package domain

import "time"

// FormView is the prediction page
type FormView struct {
	Fields      []FieldView
	Result      *ResultView
	Error       string
	Unavailable bool
}

// FieldView is one input widget with the submitted value
type FieldView struct {
	Name    string
	Label   string
	Help    string
	Select  bool
	Min     int
	Max     int
	Value   string
	Error   string
	Options []OptionView
}

// OptionView is one selector entry
type OptionView struct {
	Value    int
	Label    string
	Selected bool
}

// ResultView is the single status message after a prediction
type ResultView struct {
	Label   string
	Message string
}

// SourceView is the source panel; Error replaces the text when the fetch failed
type SourceView struct {
	Path      string
	URL       string
	Text      string
	FetchedAt time.Time
	Error     string
}
