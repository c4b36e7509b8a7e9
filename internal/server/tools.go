package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// defaultMaxSize bounds the longest side of images returned as base64.
const defaultMaxSize = 1024

// pathProperty is the schema shared by every tool's path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and file size. The decoded image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "count_objects",
			Description: "Count the objects of every configured color in an image. Returns a summary line such as \"DarkB=1,Light=3\", the blob centers per color, and optionally the annotated image with a circle drawn around each blob.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the annotated image as base64 PNG. Default false",
						"default":     false,
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the returned image in pixels; larger images are scaled down. Default 1024",
						"default":     defaultMaxSize,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_mask",
			Description: "Build the binary mask of one configured color range and return it as base64 PNG together with the number of matching pixels. Use this to check why a color is over- or under-counted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Name of the color range (see list_color_ranges)",
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the returned mask in pixels. Default 1024",
						"default":     defaultMaxSize,
					},
				},
				"required": []string{"path", "color"},
			},
		},
		{
			Name:        "sample_hsv",
			Description: "Get the color at a pixel in hex, RGB, HSV on the mask scale (0-255 per channel) and conventional HSV, plus the names of the color ranges that contain it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "list_color_ranges",
			Description: "List the configured color ranges with their HSV bounds and marker colors, and the blob detector parameters.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
