package agent

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/indiekitai/env-audit/internal/audit"
	"github.com/indiekitai/env-audit/internal/audit/types"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

// Server exposes the audit pipeline as MCP tools for AI agents:
// env_audit_scan, env_audit_check and env_audit_add.
type Server struct {
	version string
	fs      filesystems.FileSystem
}

func NewServer(version string) *Server {
	return &Server{
		version: version,
		fs:      filesystems.NewLocalFS(),
	}
}

// Serve runs the MCP server over stdio until the client disconnects.
func Serve(version string) error {
	return server.ServeStdio(NewServer(version).MCPServer())
}

func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("env-audit", s.version, server.WithToolCapabilities(false))

	srv.AddTool(mcp.NewTool("env_audit_scan",
		mcp.WithDescription("Scan a codebase for environment variable references. Returns JSON with every variable found: name, category, files, occurrences, required, sensitive, default and whether it is already documented."),
		mcp.WithString("path", mcp.Description("Directory to scan (default: current directory)")),
	), s.handleScan)

	srv.AddTool(mcp.NewTool("env_audit_check",
		mcp.WithDescription("Check that every environment variable referenced in code is documented in the project's env files. Use in CI to keep documentation current."),
		mcp.WithString("path", mcp.Description("Directory to check (default: current directory)")),
	), s.handleCheck)

	srv.AddTool(mcp.NewTool("env_audit_add",
		mcp.WithDescription("Add a new environment variable to .env.example, creating the file if needed. Value and description are guessed from the name when omitted."),
		mcp.WithString("var", mcp.Description("Variable name, e.g. DATABASE_URL"), mcp.Required()),
		mcp.WithString("path", mcp.Description("Project directory (default: current directory)")),
		mcp.WithString("value", mcp.Description("Example value")),
		mcp.WithString("description", mcp.Description("Description for the doc comment")),
	), s.handleAdd)

	return srv
}

// scan runs the pipeline with repo-local config applied.
func (s *Server) scan(ctx context.Context, root string) (*types.Registry, map[string]bool, error) {
	cfg, err := audit.LoadConfig(s.fs, root)
	if err != nil {
		return nil, nil, err
	}

	scanner := audit.NewScanner(s.fs, cfg.Apply(audit.Options{}))
	reg, _, err := scanner.Scan(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	documented, err := audit.DocumentedVars(s.fs, root)
	if err != nil {
		return nil, nil, err
	}
	return reg, documented, nil
}

type scanVariable struct {
	*types.VariableRecord
	Documented bool `json:"documented"`
}

func (s *Server) handleScan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, result := resolvePath(argsMap(request))
	if result != nil {
		return result, nil
	}

	reg, documented, err := s.scan(ctx, root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	variables := make(map[string]scanVariable, reg.Len())
	undocumented := 0
	for _, rec := range reg.Records() {
		isDocumented := documented[rec.Name]
		if !isDocumented {
			undocumented++
		}
		variables[rec.Name] = scanVariable{VariableRecord: rec, Documented: isDocumented}
	}

	return jsonResult(map[string]interface{}{
		"path":         root,
		"total":        reg.Len(),
		"documented":   len(documented),
		"undocumented": undocumented,
		"variables":    variables,
	})
}

type missingVariable struct {
	Name      string   `json:"name"`
	Required  bool     `json:"required"`
	Sensitive bool     `json:"sensitive"`
	Files     []string `json:"files"`
	Category  string   `json:"category"`
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, result := resolvePath(argsMap(request))
	if result != nil {
		return result, nil
	}

	reg, documented, err := s.scan(ctx, root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	diff := audit.Diff(reg, documented)

	missing := make([]missingVariable, 0, len(diff.Undocumented))
	for _, name := range diff.Undocumented {
		rec, ok := reg.Get(name)
		if !ok {
			continue
		}
		files := rec.Files
		if len(files) > 3 {
			files = files[:3]
		}
		missing = append(missing, missingVariable{
			Name:      name,
			Required:  rec.Required,
			Sensitive: rec.Sensitive,
			Files:     files,
			Category:  rec.Category,
		})
	}

	return jsonResult(map[string]interface{}{
		"passed":        diff.Clean,
		"total":         reg.Len(),
		"documented":    len(documented),
		"missing_count": len(missing),
		"missing":       missing,
	})
}

func (s *Server) handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsMap(request)

	root, result := resolvePath(args)
	if result != nil {
		return result, nil
	}

	name := stringParam(args, "var", "")
	value := stringParam(args, "value", "")
	description := stringParam(args, "description", "")
	if name != "" {
		if value == "" {
			value = types.ExampleValue(name, nil)
		}
		if description == "" {
			description = types.Describe(name)
		}
	}

	docPath := filepath.Join(root, ".env.example")
	doc, err := os.ReadFile(docPath)
	if err != nil && !os.IsNotExist(err) {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := audit.AddToDoc(doc, name, value, description)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := os.WriteFile(docPath, updated, 0o644); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]interface{}{
		"success":     true,
		"action":      "added",
		"variable":    name,
		"value":       value,
		"description": description,
		"file":        docPath,
	})
}

// resolvePath validates the path argument. The error result is non-nil when
// the path does not exist.
func resolvePath(args map[string]interface{}) (string, *mcp.CallToolResult) {
	root := stringParam(args, "path", ".")
	if _, err := os.Stat(root); err != nil {
		return "", mcp.NewToolResultError("path '" + root + "' does not exist")
	}
	return root, nil
}
