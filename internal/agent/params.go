package agent

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// argsMap extracts the arguments map from an MCP tool call request.
// Returns an empty map if arguments are nil or not a map.
func argsMap(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

// stringParam extracts a string parameter, falling back to def when the
// argument is absent or not a string.
func stringParam(args map[string]interface{}, key, def string) string {
	if val, ok := args[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return def
}

// jsonResult marshals any value to indented JSON and returns it as an MCP
// tool result.
func jsonResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
