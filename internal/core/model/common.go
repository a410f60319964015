package model

// Display markers
const (
	MissingMarker       = "N/A"
	NotComputableMarker = "n/c"
)

// Time-point key conventions
const (
	KeySeparator   = "_"
	LabelSeparator = " "
)
