package server

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ironsheep/count-objects/internal/detection"
	"github.com/ironsheep/count-objects/internal/imaging"
	"github.com/ironsheep/count-objects/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "count_objects").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/pipeline function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "count_objects":
		return s.handleCountObjects(args)
	case "color_mask":
		return s.handleColorMask(args)
	case "sample_hsv":
		return s.handleSampleHSV(args)
	case "list_color_ranges":
		return s.handleListColorRanges()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as {}.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Counting ===

type countObjectsArgs struct {
	Path         string `json:"path"`
	IncludeImage bool   `json:"include_image"`
	MaxSize      int    `json:"max_size"`
}

// CountObjectsResult is the count_objects tool output.
type CountObjectsResult struct {
	RunID   string                 `json:"run_id"`
	Summary string                 `json:"summary"`
	Counts  []pipeline.Count       `json:"counts"`
	Ranges  []pipeline.RangeResult `json:"ranges"`
	Image   *imaging.EncodedImage  `json:"image,omitempty"`
}

func (s *Server) handleCountObjects(args json.RawMessage) (interface{}, error) {
	var a countObjectsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MaxSize == 0 {
		a.MaxSize = defaultMaxSize
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := pipeline.Run(img, s.config, nil)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("count_objects %s: %s (run %s)", a.Path, result.Summary(), result.RunID)
	}

	out := &CountObjectsResult{
		RunID:   result.RunID.String(),
		Summary: result.Summary(),
		Counts:  result.Counts(),
		Ranges:  result.Ranges,
	}
	if a.IncludeImage {
		out.Image, err = imaging.EncodePNG(imaging.FitWithin(result.Annotated, a.MaxSize, a.MaxSize))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type colorMaskArgs struct {
	Path    string `json:"path"`
	Color   string `json:"color"`
	MaxSize int    `json:"max_size"`
}

// ColorMaskResult is the color_mask tool output.
type ColorMaskResult struct {
	Color            string                `json:"color"`
	Lower            imaging.HSV           `json:"lower"`
	Upper            imaging.HSV           `json:"upper"`
	ForegroundPixels int                   `json:"foreground_pixels"`
	TotalPixels      int                   `json:"total_pixels"`
	Mask             *imaging.EncodedImage `json:"mask"`
}

func (s *Server) handleColorMask(args json.RawMessage) (interface{}, error) {
	var a colorMaskArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MaxSize == 0 {
		a.MaxSize = defaultMaxSize
	}
	r, ok := s.config.Range(a.Color)
	if !ok {
		return nil, fmt.Errorf("unknown color range %q (available: %s)",
			a.Color, strings.Join(s.config.RangeNames(), ", "))
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	mask, err := pipeline.BuildMask(img, r)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(imaging.FitWithin(mask, a.MaxSize, a.MaxSize))
	if err != nil {
		return nil, err
	}

	b := mask.Bounds()
	return &ColorMaskResult{
		Color:            r.Name,
		Lower:            r.Lower,
		Upper:            r.Upper,
		ForegroundPixels: imaging.CountForeground(mask),
		TotalPixels:      b.Dx() * b.Dy(),
		Mask:             encoded,
	}, nil
}

// === Color Tuning ===

type sampleHSVArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// SampleHSVResult is the sample_hsv tool output.
type SampleHSVResult struct {
	imaging.ColorResult
	InRanges []string `json:"in_ranges"`
}

func (s *Server) handleSampleHSV(args json.RawMessage) (interface{}, error) {
	var a sampleHSVArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	c, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}

	in := make([]string, 0, len(s.config.Ranges))
	for _, r := range s.config.Ranges {
		if r.Contains(c.HSV) {
			in = append(in, r.Name)
		}
	}
	return &SampleHSVResult{ColorResult: *c, InRanges: in}, nil
}

// ColorRangeInfo describes one configured range.
type ColorRangeInfo struct {
	Name    string      `json:"name"`
	Lower   imaging.HSV `json:"lower"`
	Upper   imaging.HSV `json:"upper"`
	Display string      `json:"display"`
}

// ColorRangesResult is the list_color_ranges tool output.
type ColorRangesResult struct {
	Ranges          []ColorRangeInfo     `json:"ranges"`
	Detector        detection.BlobParams `json:"detector"`
	MarkerRadius    int                  `json:"marker_radius"`
	MarkerThickness int                  `json:"marker_thickness"`
}

func (s *Server) handleListColorRanges() (interface{}, error) {
	ranges := make([]ColorRangeInfo, len(s.config.Ranges))
	for i, r := range s.config.Ranges {
		ranges[i] = ColorRangeInfo{
			Name:    r.Name,
			Lower:   r.Lower,
			Upper:   r.Upper,
			Display: r.DisplayHex(),
		}
	}
	return &ColorRangesResult{
		Ranges:          ranges,
		Detector:        s.config.Detector,
		MarkerRadius:    s.config.MarkerRadius,
		MarkerThickness: s.config.MarkerThickness,
	}, nil
}
