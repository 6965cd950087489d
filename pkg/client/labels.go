package client

// UnknownLabel is the display label for wire codes outside the known tables.
// At the display boundary an out-of-range code is labeled rather than failed.
const UnknownLabel = "UNKNOWN"

var statusLabels = map[int32]string{
	0: "PENDING",
	1: "IN_PROGRESS",
	2: "COMPLETED",
	3: "BLOCKED",
}

var priorityLabels = map[int32]string{
	0: "LOW",
	1: "MEDIUM",
	2: "HIGH",
	3: "URGENT",
}

// StatusLabel maps a wire status code to its display label.
func StatusLabel(code int32) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return UnknownLabel
}

// PriorityLabel maps a wire priority code to its display label.
func PriorityLabel(code int32) string {
	if label, ok := priorityLabels[code]; ok {
		return label
	}
	return UnknownLabel
}
