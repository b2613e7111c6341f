package domain

import (
	"errors"
	"testing"
)

func TestGraph_InsertionOrder(t *testing.T) {
	g := NewGraph()
	ids := []string{"c", "a", "b", "__end__", "__start__"}
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q) failed: %v", id, err)
		}
	}

	nodes := g.Nodes()
	if len(nodes) != len(ids) {
		t.Fatalf("Expected %d nodes, got %d", len(ids), len(nodes))
	}
	for i, id := range ids {
		if nodes[i].ID != id {
			t.Errorf("Node %d: expected %q, got %q", i, id, nodes[i].ID)
		}
	}
}

func TestGraph_DuplicateNode(t *testing.T) {
	g := NewGraph()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("First AddNode failed: %v", err)
	}
	err := g.AddNode(Node{ID: "a"})
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("Expected ErrDuplicateNode, got %v", err)
	}
}

func TestGraph_EmptyNodeID(t *testing.T) {
	g := NewGraph()
	if err := g.AddNode(Node{}); err == nil {
		t.Error("Expected error for empty node ID")
	}
}

func TestGraph_EdgeOrder(t *testing.T) {
	g := NewGraph()
	// Edges keep their given order, including duplicates and self-loops.
	edges := []Edge{
		{Source: "b", Target: "a"},
		{Source: "a", Target: "a"},
		{Source: "b", Target: "a"},
		{Source: "a", Target: "c", Conditional: true},
	}
	for _, e := range edges {
		g.AddEdge(e)
	}

	got := g.Edges()
	if len(got) != len(edges) {
		t.Fatalf("Expected %d edges, got %d", len(edges), len(got))
	}
	for i, e := range edges {
		if got[i] != e {
			t.Errorf("Edge %d: expected %+v, got %+v", i, e, got[i])
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{StartID, "Start"},
		{EndID, "End"},
		{"fetch", "fetch"},
		{"__other__", "__other__"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Label(tt.id); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
