package domain

// Reserved node identifiers. They denote the implicit entry and exit
// points of a flow and receive human-readable labels instead of their
// raw identifiers when rendered.
const (
	StartID = "__start__"
	EndID   = "__end__"
)

// specialLabels maps the reserved identifiers to their display labels.
// Kept as a lookup table (not scattered branching) so the rule is
// independently testable.
var specialLabels = map[string]string{
	StartID: "Start",
	EndID:   "End",
}

// Label returns the display label for a node identifier: "Start" for
// the reserved entry, "End" for the reserved exit, otherwise the
// identifier verbatim.
func Label(id string) string {
	if label, ok := specialLabels[id]; ok {
		return label
	}
	return id
}
