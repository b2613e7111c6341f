package dto

// FlowDefinition represents the raw shape of a flow file.
// It uses "mapstructure" tags so the compiler can decode generic YAML
// maps without committing to a specific decoder up front.
type FlowDefinition struct {
	Name  string     `json:"name" mapstructure:"name"`
	Nodes []FlowNode `json:"nodes" mapstructure:"nodes"`
	Edges []FlowEdge `json:"edges" mapstructure:"edges"`
}

// FlowNode is a node declaration in a flow file.
type FlowNode struct {
	ID       string            `json:"id" mapstructure:"id"`
	Metadata map[string]string `json:"metadata" mapstructure:"metadata"`
}

// FlowEdge is an edge declaration in a flow file.
// Both source/target and the shorter from/to aliases are accepted.
type FlowEdge struct {
	Source      string `json:"source" mapstructure:"source"`
	From        string `json:"from" mapstructure:"from"`
	Target      string `json:"target" mapstructure:"target"`
	To          string `json:"to" mapstructure:"to"`
	Conditional bool   `json:"conditional" mapstructure:"conditional"`
}

// SourceID resolves the edge source, preferring the canonical field.
func (e FlowEdge) SourceID() string {
	if e.Source != "" {
		return e.Source
	}
	return e.From
}

// TargetID resolves the edge target, preferring the canonical field.
func (e FlowEdge) TargetID() string {
	if e.Target != "" {
		return e.Target
	}
	return e.To
}
