package tools

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
	"github.com/parkscout/nps-mcp-server/internal/nps"
)

func testRegistry() *HandlerRegistry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandlerRegistry(nps.NewClient(nps.WithLogger(logger)), logger)
}

func TestAllTools_StableCatalog(t *testing.T) {
	wantNames := []string{"find_parks", "get_park_details", "get_alerts"}

	if len(AllTools) != len(wantNames) {
		t.Fatalf("tool count = %d, want %d", len(AllTools), len(wantNames))
	}
	for i, spec := range AllTools {
		if spec.Name != wantNames[i] {
			t.Errorf("tool[%d] = %q, want %q", i, spec.Name, wantNames[i])
		}
	}
}

func TestAllTools_SpecsComplete(t *testing.T) {
	for _, spec := range AllTools {
		if spec.Method == "" {
			t.Errorf("tool %q has no method", spec.Name)
		}
		if spec.Title == "" {
			t.Errorf("tool %q has no title", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("tool %q has no description", spec.Name)
		}
		if !strings.Contains(spec.Description, "USE WHEN") {
			t.Errorf("tool %q description missing USE WHEN guidance", spec.Name)
		}
		if !spec.ReadOnly {
			t.Errorf("tool %q must be read-only", spec.Name)
		}
		if !spec.Idempotent {
			t.Errorf("tool %q must be idempotent", spec.Name)
		}
	}
}

func TestBuildTool_Annotations(t *testing.T) {
	registry := testRegistry()

	for _, spec := range AllTools {
		tool := registry.buildTool(spec)

		if tool.Name != spec.Name {
			t.Errorf("tool name = %q, want %q", tool.Name, spec.Name)
		}
		if tool.Annotations == nil {
			t.Fatalf("tool %q has no annotations", spec.Name)
		}
		if tool.Annotations.Title != spec.Title {
			t.Errorf("tool %q title = %q, want %q", spec.Name, tool.Annotations.Title, spec.Title)
		}
		if !tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %q missing read-only hint", spec.Name)
		}
		if !tool.Annotations.IdempotentHint {
			t.Errorf("tool %q missing idempotent hint", spec.Name)
		}
		if tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint {
			t.Errorf("tool %q missing open-world hint", spec.Name)
		}
	}
}

func TestRegisterAll(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)

	// Must not panic; every catalog entry dispatches to a known method.
	testRegistry().RegisterAll(server)
}

func TestTextResult_PrettyPrinted(t *testing.T) {
	result := textResult(map[string]string{"parkCode": "yose"})

	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", result.Content[0])
	}

	// 2-space indentation
	if !strings.Contains(text.Text, "{\n  \"parkCode\": \"yose\"\n}") {
		t.Errorf("payload not pretty-printed with 2-space indent:\n%s", text.Text)
	}
}

func TestTextResult_ErrorEnvelopeShape(t *testing.T) {
	env := apierrors.FromError(apierrors.NewNotFoundError("park", "zzzz"))
	result := textResult(env)

	text := result.Content[0].(*mcp.TextContent).Text

	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	if decoded["error"] != "Park not found" {
		t.Errorf("error = %v, want %q", decoded["error"], "Park not found")
	}
	if decoded["message"] != "No park found with code: zzzz" {
		t.Errorf("message = %v", decoded["message"])
	}
}

func TestPtr(t *testing.T) {
	p := ptr(true)
	if p == nil || !*p {
		t.Error("ptr(true) should return a pointer to true")
	}
}
