// Package messages defines Bubbletea message types for the watch view.
package messages

import "time"

// Rendered carries a freshly rendered view of the watched file.
type Rendered struct {
	// Content is the rendered output.
	Content string

	// Err is set when reading or normalising the file failed. The view
	// keeps showing the last good content.
	Err error

	// At is when the render happened.
	At time.Time
}

// SourceClosed is sent when no more renders will arrive.
type SourceClosed struct{}
