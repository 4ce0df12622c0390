package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/baranwang/mcp-longbridge/pkg/service/params"
)

// toolResult wraps a handler's output in the uniform response envelope.
// A slice result becomes one text block per element, preserving order; any
// other value becomes exactly one block.
func toolResult(v interface{}) *mcp.CallToolResult {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		content := make([]mcp.Content, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			content = append(content, textBlock(rv.Index(i).Interface()))
		}
		return &mcp.CallToolResult{Content: content}
	}
	return &mcp.CallToolResult{Content: []mcp.Content{textBlock(v)}}
}

func textBlock(v interface{}) mcp.Content {
	return mcp.TextContent{Type: "text", Text: marshalJSON(v)}
}

func marshalJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error marshaling result: %v", err)
	}
	return string(data)
}

// The three error kinds every fault collapses into. Validation failures
// (including unknown tool names) carry per-field diagnostics; backend
// faults pass their message through untouched; anything recovered that is
// not an error is serialized best-effort.
type errorKind string

const (
	kindValidation errorKind = "validation"
	kindBackend    errorKind = "backend"
	kindUnknown    errorKind = "unknown"
)

func classify(err error) errorKind {
	var validationErr *params.ValidationError
	var unknownTool *UnknownToolError
	if errors.As(err, &validationErr) || errors.As(err, &unknownTool) {
		return kindValidation
	}
	return kindBackend
}

// errorResult produces the uniform error envelope: the error flag set and
// exactly one human-readable text block, never partial success content.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: err.Error()},
		},
	}
}

// panicResult handles recovered values. Errors keep their message;
// anything else is rendered best-effort.
func panicResult(recovered interface{}) *mcp.CallToolResult {
	if err, ok := recovered.(error); ok {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: fmt.Sprintf("unexpected fault: %v", recovered)},
		},
	}
}
