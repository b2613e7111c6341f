package flowdoc_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/internal/docsync"
	"github.com/rtakeda/flowdoc/pkg/domain"
	"github.com/rtakeda/flowdoc/pkg/dsl"
)

const testFlow = `
name: order-flow
nodes:
  - id: fetch
  - id: validate
edges:
  - from: __start__
    to: fetch
  - from: fetch
    to: validate
  - from: validate
    to: __end__
    conditional: true
`

const testDoc = `# Order Flow

<!-- MERMAID_DIAGRAM_START -->
<!-- MERMAID_DIAGRAM_END -->
`

func writeProject(t *testing.T) (flowPath, docPath string) {
	t.Helper()
	dir := t.TempDir()
	flowPath = filepath.Join(dir, "flow.yaml")
	docPath = filepath.Join(dir, "README.md")
	if err := os.WriteFile(flowPath, []byte(testFlow), 0644); err != nil {
		t.Fatalf("WriteFile(flow) failed: %v", err)
	}
	if err := os.WriteFile(docPath, []byte(testDoc), 0644); err != nil {
		t.Fatalf("WriteFile(doc) failed: %v", err)
	}
	return flowPath, docPath
}

func TestEngine_SyncEndToEnd(t *testing.T) {
	flowPath, docPath := writeProject(t)

	eng, err := flowdoc.New(flowPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx := context.Background()
	if err := eng.Sync(ctx, docPath); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"# Order Flow",
		"```mermaid",
		"graph TD;",
		"    __start__([Start]);",
		"    fetch([fetch]);",
		"    validate([validate]);",
		"    __end__([End]);",
		"    __start__ --> fetch;",
		"    fetch --> validate;",
		"    validate -.->|conditional| __end__;",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Synced document missing %q:\n%s", want, doc)
		}
	}

	// Second sync must be byte-stable.
	if err := eng.Sync(ctx, docPath); err != nil {
		t.Fatalf("Second Sync() failed: %v", err)
	}
	again, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(again) != doc {
		t.Error("Second sync changed the document")
	}
}

func TestEngine_Check(t *testing.T) {
	flowPath, docPath := writeProject(t)

	eng, err := flowdoc.New(flowPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx := context.Background()
	inSync, err := eng.Check(ctx, docPath)
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if inSync {
		t.Error("Expected drift before first sync")
	}

	if err := eng.Sync(ctx, docPath); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}

	inSync, err = eng.Check(ctx, docPath)
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if !inSync {
		t.Error("Expected document in sync after Sync()")
	}
}

func TestEngine_MissingMarkers(t *testing.T) {
	flowPath, docPath := writeProject(t)
	if err := os.WriteFile(docPath, []byte("# No markers\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	eng, err := flowdoc.New(flowPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = eng.Sync(context.Background(), docPath)
	var missing *docsync.MissingMarkerError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingMarkerError, got %v", err)
	}
	if missing.Path != docPath {
		t.Errorf("Expected error path %q, got %q", docPath, missing.Path)
	}

	data, _ := os.ReadFile(docPath)
	if string(data) != "# No markers\n" {
		t.Error("Document mutated despite marker failure")
	}
}

func TestEngine_WithSource(t *testing.T) {
	b := dsl.New()
	b.Add("a").Entry().Terminal()

	eng, err := flowdoc.New("", flowdoc.WithSource(b))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	out, err := eng.Mermaid()
	if err != nil {
		t.Fatalf("Mermaid() failed: %v", err)
	}
	want := "graph TD;\n" +
		"    __start__([Start]);\n" +
		"    a([a]);\n" +
		"    __end__([End]);\n" +
		"    __start__ --> a;\n" +
		"    a --> __end__;\n"
	if out != want {
		t.Errorf("Mermaid() =\n%s\nWant:\n%s", out, want)
	}
}

func TestEngine_RequiresSourceOrPath(t *testing.T) {
	if _, err := flowdoc.New(""); err == nil {
		t.Error("Expected error when neither flowPath nor source is given")
	}
}

func TestEngine_WithMarkers(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.md")
	doc := "intro\n<!-- FLOW START -->\nold\n<!-- FLOW END -->\n"
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	b := dsl.New()
	b.Add("a").Entry().Terminal()

	eng, err := flowdoc.New("", flowdoc.WithSource(b),
		flowdoc.WithMarkers("<!-- FLOW START -->", "<!-- FLOW END -->"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := eng.Sync(context.Background(), docPath); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}
	data, _ := os.ReadFile(docPath)
	if !strings.Contains(string(data), "<!-- FLOW START -->\n```mermaid\n") {
		t.Errorf("Custom markers not honored:\n%s", data)
	}
	if strings.Contains(string(data), "old") {
		t.Errorf("Old span content not replaced:\n%s", data)
	}
}

func TestEngine_WatchUnsupportedSource(t *testing.T) {
	b := dsl.New()
	b.Add("a").Entry().Terminal()

	eng, err := flowdoc.New("", flowdoc.WithSource(b))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := eng.Watch(context.Background()); err == nil {
		t.Error("Expected error for non-watchable source")
	}
}

func TestEngine_SyncMissingDocument(t *testing.T) {
	flowPath, _ := writeProject(t)
	eng, err := flowdoc.New(flowPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	err = eng.Sync(context.Background(), filepath.Join(t.TempDir(), "gone.md"))
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("Expected ErrDocumentNotFound, got %v", err)
	}
}
