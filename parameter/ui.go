package parameter

import "time"

// Layout & Margins
const (
	// TopMargin for the title rule
	TopMargin = 1

	// BottomMargin for the status bar (1 line parameters, 1 line progress)
	BottomMargin = 2

	// SidePanelWidth is the parameter panel width, hidden when the terminal is narrower than SidePanelMinCols
	SidePanelWidth   = 28
	SidePanelMinCols = 100
)

// Status Bar
const (
	// StatusMessageTimeout is how long transient messages (export, errors) stay visible
	StatusMessageTimeout = 3 * time.Second

	// UI Symbols
	AudioStr  = "♫ "
	PausedStr = " PAUSED "
	DoneStr   = " COMPLETE "
)

// Report
const (
	// ReportGraphHeight is the row count of the headless growth chart
	ReportGraphHeight = 12

	// ReportGraphWidth is the column count of the headless growth chart
	ReportGraphWidth = 60

	// ReportSamples is the number of radius samples retained for the chart
	ReportSamples = 240
)
