package app

import "time"

// Layout constants define the fixed parts of the compose screen.
const (
	// HeaderRows is the height of the recipient header at the top. In
	// full-size mode the compose pane starts right below it.
	HeaderRows = 1

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3

	// MinEditorWidth keeps the textarea usable on very narrow terminals.
	MinEditorWidth = 10
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters in the insert prompt.
	InputCharLimit = 120
)

// Rendering constants control preview timing and caching.
const (
	// PreviewDebounce is the delay before a preview render starts, so a
	// burst of resizes only renders once.
	PreviewDebounce = 150 * time.Millisecond

	// RenderWidthBucket is the granularity for width-based renderer caching.
	RenderWidthBucket = 20
)
