// Package mcp exposes the explorer session to agents over the MCP stdio
// protocol: a JSON-RPC 2.0 message loop reading stdin line by line.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/assemble"
	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
	"github.com/Nick-prog/Microsoft-API-Email/internal/session"
)

// Server implements the MCP server protocol over one explorer session.
// The single-reader message loop serializes all session access.
type Server struct {
	logger  zerolog.Logger
	session *session.Session
	in      io.Reader
	out     io.Writer
}

// MCPRequest represents an incoming MCP request
type MCPRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// MCPResponse represents an outgoing MCP response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents an MCP error response
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewServer creates an MCP server over the given session, speaking on
// stdin/stdout.
func NewServer(logger zerolog.Logger, sess *session.Session) *Server {
	return &Server{
		logger:  logger.With().Str("component", "mcp_server").Logger(),
		session: sess,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// NewServerWithStreams creates an MCP server on explicit streams, for tests.
func NewServerWithStreams(logger zerolog.Logger, sess *session.Session, in io.Reader, out io.Writer) *Server {
	s := NewServer(logger, sess)
	s.in = in
	s.out = out
	return s
}

// Start begins the MCP server message loop
func (s *Server) Start() error {
	s.logger.Debug().Msg("MCP server started, reading messages")

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := s.HandleMessage(line); err != nil {
			s.logger.Error().Err(err).Msg("error handling MCP message")
			// Continue processing other messages
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error reading MCP input")
		return err
	}

	s.logger.Debug().Msg("MCP server stopped")
	return nil
}

// HandleMessage processes a single MCP message
func (s *Server) HandleMessage(line string) error {
	var req MCPRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.logger.Warn().Err(err).Str("line", line).Msg("failed to parse MCP message")
		return s.sendError(nil, -32700, "Parse error")
	}

	s.logger.Debug().
		Interface("id", req.ID).
		Str("method", req.Method).
		Msg("processing MCP request")

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return s.handleToolsList(req.ID)
	case "tools/call":
		return s.handleToolsCall(req.ID, req.Params)
	case "notifications/cancelled":
		s.logger.Debug().Msg("received cancellation notification")
		return nil
	default:
		s.logger.Warn().Str("method", req.Method).Msg("unknown MCP method")
		return s.sendError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (s *Server) handleInitialize(id interface{}) error {
	response := MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"serverInfo": map[string]interface{}{
				"name":        "graphq",
				"version":     "1.0.0",
				"description": "Build Microsoft Graph query URLs from catalog filters",
			},
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
		},
	}

	return s.sendResponse(response)
}

func (s *Server) handleToolsList(id interface{}) error {
	tools := []map[string]interface{}{
		{
			"name":        "list_endpoints",
			"description": "List the catalog of API endpoints and their dynamic filters. Optionally narrow by search term, category, version or method.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"search":   map[string]interface{}{"type": "string", "description": "Substring match on name, description and URL"},
					"category": map[string]interface{}{"type": "string"},
					"version":  map[string]interface{}{"type": "string", "description": "v1.0 or beta"},
					"method":   map[string]interface{}{"type": "string"},
				},
			},
		},
		{
			"name":        "select_endpoint",
			"description": "Select the endpoint to build a query for. Switching endpoints discards the previous endpoint's active filters.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"endpoint": map[string]interface{}{"type": "string", "description": "Endpoint id, e.g. list-messages"},
				},
				"required": []string{"endpoint"},
			},
		},
		{
			"name":        "set_context",
			"description": "Set the opaque context segment (e.g. a resolved mail folder id) that scopes endpoints supporting path context.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"segment": map[string]interface{}{"type": "string"},
				},
				"required": []string{"segment"},
			},
		},
		{
			"name":        "preview_filter",
			"description": "Validate values against a filter and render its fragment without changing the selection. Use for live preview.",
			"inputSchema": filterToolSchema(),
		},
		{
			"name":        "toggle_filter",
			"description": "Validate, render and toggle a filter on the selected endpoint. Toggling the same values twice removes the filter; changed values replace it in place.",
			"inputSchema": filterToolSchema(),
		},
		{
			"name":        "build_url",
			"description": "Assemble the final query URL from the selected endpoint, its context segment and the active filters. Same-family $filter fragments coalesce into one clause joined by 'and'.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"default_top": map[string]interface{}{
						"type":        "boolean",
						"description": "Append $top=100 when no active filter sets $top",
						"default":     false,
					},
				},
			},
		},
		{
			"name":        "clear_filters",
			"description": "Remove every active filter from the selected endpoint.",
			"inputSchema": map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}

	return s.sendResponse(MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]interface{}{"tools": tools},
	})
}

func filterToolSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filter": map[string]interface{}{
				"type":        "string",
				"description": "Filter label as listed by list_endpoints, e.g. 'Limit Results'",
			},
			"values": map[string]interface{}{
				"type":        "object",
				"description": "Placeholder values keyed by placeholder name (value, number, datetime, text, email, or compound sub-field names)",
			},
			"fields": map[string]interface{}{
				"type":        "array",
				"description": "MultiSelect selection in the desired order",
				"items":       map[string]interface{}{"type": "string"},
			},
		},
		"required": []string{"filter"},
	}
}

func (s *Server) handleToolsCall(id interface{}, params interface{}) error {
	paramsMap, ok := params.(map[string]interface{})
	if !ok {
		return s.sendError(id, -32602, "Invalid params")
	}

	name, ok := paramsMap["name"].(string)
	if !ok {
		return s.sendError(id, -32602, "Missing tool name")
	}

	arguments, ok := paramsMap["arguments"].(map[string]interface{})
	if !ok {
		arguments = make(map[string]interface{})
	}

	s.logger.Debug().
		Str("tool_name", name).
		Interface("arguments", arguments).
		Msg("executing tool call")

	switch name {
	case "list_endpoints":
		return s.executeListEndpoints(id, arguments)
	case "select_endpoint":
		return s.executeSelectEndpoint(id, arguments)
	case "set_context":
		return s.executeSetContext(id, arguments)
	case "preview_filter":
		return s.executePreviewFilter(id, arguments)
	case "toggle_filter":
		return s.executeToggleFilter(id, arguments)
	case "build_url":
		return s.executeBuildURL(id, arguments)
	case "clear_filters":
		return s.executeClearFilters(id)
	default:
		return s.sendError(id, -32601, fmt.Sprintf("Unknown tool: %s", name))
	}
}

func (s *Server) executeListEndpoints(id interface{}, args map[string]interface{}) error {
	search := catalog.Search{
		Term:     stringArg(args, "search"),
		Category: stringArg(args, "category"),
		Version:  catalog.Version(stringArg(args, "version")),
		Method:   stringArg(args, "method"),
	}

	var b strings.Builder
	for _, ep := range search.Select(s.session.Endpoints()) {
		fmt.Fprintf(&b, "%s: %s [%s %s, %s]\n", ep.ID, ep.Name, ep.Method, ep.BaseURL, ep.Version)
		for i := range ep.Filters {
			cfg := &ep.Filters[i]
			fmt.Fprintf(&b, "  %s (%s, param %s): %s\n", cfg.Label, cfg.Kind, cfg.ParamKey, cfg.Template)
		}
	}
	if b.Len() == 0 {
		b.WriteString("No endpoints match.\n")
	}

	return s.sendText(id, b.String())
}

func (s *Server) executeSelectEndpoint(id interface{}, args map[string]interface{}) error {
	endpointID := stringArg(args, "endpoint")
	if endpointID == "" {
		return s.sendError(id, -32602, "Missing required parameter: endpoint")
	}

	ep, err := s.session.SelectEndpoint(endpointID)
	if err != nil {
		return s.sendError(id, -32602, err.Error())
	}

	return s.sendText(id, fmt.Sprintf("Selected %s (%s). %d filters available.", ep.ID, ep.Name, len(ep.Filters)))
}

func (s *Server) executeSetContext(id interface{}, args map[string]interface{}) error {
	segment := stringArg(args, "segment")
	if segment == "" {
		return s.sendError(id, -32602, "Missing required parameter: segment")
	}

	s.session.SetContextSegment(segment)
	return s.sendText(id, "Context segment set.")
}

func (s *Server) executePreviewFilter(id interface{}, args map[string]interface{}) error {
	cfg, bag, err := s.filterArgs(args)
	if err != nil {
		return s.sendError(id, -32602, err.Error())
	}

	fragment, err := s.session.RenderPreview(cfg, bag)
	if err != nil {
		return s.sendError(id, -32602, err.Error())
	}

	return s.sendText(id, "Preview: "+fragment)
}

func (s *Server) executeToggleFilter(id interface{}, args map[string]interface{}) error {
	cfg, bag, err := s.filterArgs(args)
	if err != nil {
		return s.sendError(id, -32602, err.Error())
	}

	result, err := s.session.ToggleFilter(cfg, bag)
	if err != nil {
		return s.sendError(id, -32602, err.Error())
	}

	state := "removed"
	if result.Added {
		state = "active"
	}
	text := fmt.Sprintf("Filter %s: %s (%d active)", state, result.Fragment, len(s.session.ActiveFilters()))
	for _, warning := range result.Warnings {
		text += "\nWarning: " + warning
	}

	return s.sendText(id, text)
}

func (s *Server) executeBuildURL(id interface{}, args map[string]interface{}) error {
	var opts []assemble.Option
	if wantTop, ok := args["default_top"].(bool); ok && wantTop {
		opts = append(opts, assemble.WithDefaultTop())
	}

	url, err := s.session.BuildQueryURL(opts...)
	if err != nil {
		return s.sendError(id, -32603, err.Error())
	}

	return s.sendText(id, url)
}

func (s *Server) executeClearFilters(id interface{}) error {
	s.session.ClearFilters()
	return s.sendText(id, "All filters cleared.")
}

// filterArgs resolves the filter label against the selected endpoint and
// builds the value bag from the tool arguments.
func (s *Server) filterArgs(args map[string]interface{}) (*filter.Config, *filter.ValueBag, error) {
	ep := s.session.Endpoint()
	if ep == nil {
		return nil, nil, fmt.Errorf("no endpoint selected; call select_endpoint first")
	}

	label := stringArg(args, "filter")
	if label == "" {
		return nil, nil, fmt.Errorf("missing required parameter: filter")
	}

	cfg, err := ep.FindFilter(label)
	if err != nil {
		return nil, nil, err
	}

	bag := filter.SeedDefaults(cfg)

	if fields, ok := args["fields"].([]interface{}); ok {
		for _, f := range bag.Fields() {
			bag.DeselectField(f)
		}
		for _, f := range fields {
			if name, ok := f.(string); ok {
				bag.SelectField(name)
			}
		}
	}

	if values, ok := args["values"].(map[string]interface{}); ok {
		for key, raw := range values {
			bag.Set(key, fmt.Sprintf("%v", raw))
		}
	}

	return cfg, bag, nil
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func (s *Server) sendText(id interface{}, text string) error {
	return s.sendResponse(MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": text},
			},
		},
	})
}

func (s *Server) sendResponse(response MCPResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, string(data))
	return err
}

func (s *Server) sendError(id interface{}, code int, message string) error {
	return s.sendResponse(MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	})
}
