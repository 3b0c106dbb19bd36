package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/thinkd/internal/thinking"
)

const toolName = "deliberatethinking"

const toolDescription = `A detailed tool for dynamic and reflective problem-solving through thoughts.
This tool helps analyze problems through a flexible thinking process that can adapt and evolve.
Each thought can build on, question, or revise previous insights as understanding deepens.

When to use this tool:
- Breaking down complex problems into steps
- Planning and design with room for revision
- Analysis that might need course correction
- Problems where the full scope might not be clear initially
- Problems that require a multi-step solution
- Tasks that need to maintain context over multiple steps
- Situations where irrelevant information needs to be filtered out

Key features:
- You can adjust total_thoughts up or down as you progress
- You can question or revise previous thoughts
- You can add more thoughts even after reaching what seemed like the end
- You can express uncertainty and explore alternative approaches
- Not every thought needs to build linearly - you can branch or backtrack
- Generates a solution hypothesis
- Verifies the hypothesis based on the Chain of Thought steps
- Repeats the process until satisfied
- Provides a correct answer`

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        toolName,
		Description: toolDescription,
		InputSchema: thinkingInputSchema(),
	}, s.handleDeliberateThinking)
}

// handleDeliberateThinking is the deliberatethinking tool handler.
//
// The handler takes the raw argument bag so that validation stays on our
// side of the boundary: the first missing or ill-typed field is reported
// back as a tool error naming that field, with no ledger mutation. After
// validation the submit path cannot fail.
func (s *Server) handleDeliberateThinking(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, thinking.Snapshot, error) {
	start := time.Now()
	s.metrics.IncrementActive(ctx, toolName)
	var toolErr error
	defer func() {
		s.metrics.DecrementActive(ctx, toolName)
		s.metrics.RecordInvocation(ctx, toolName, time.Since(start), toolErr)
	}()

	record, err := thinking.ParseRecord(args)
	if err != nil {
		toolErr = err
		return nil, thinking.Snapshot{}, err
	}

	snap := s.ledger.Submit(record)

	if s.thoughtLog {
		s.logThought(record)
	}

	body, err := json.Marshal(snap)
	if err != nil {
		toolErr = fmt.Errorf("failed to serialize response: %w", err)
		return nil, thinking.Snapshot{}, toolErr
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(body)},
		},
	}, snap, nil
}

// logThought echoes an accepted thought at Info level.
func (s *Server) logThought(t thinking.Thought) {
	fields := []zap.Field{
		zap.Int("thought_number", t.Number),
		zap.Int("total_thoughts", t.Total),
		zap.String("thought", t.Content),
	}
	if t.BranchID != "" {
		fields = append(fields,
			zap.String("branch_id", t.BranchID),
			zap.Int("branch_from", t.BranchFrom),
		)
	}
	if t.IsRevision && t.Revises != 0 {
		fields = append(fields, zap.Int("revises_thought", t.Revises))
	}
	s.logger.Info("deliberate thinking step", fields...)
}

// thinkingInputSchema describes the tool arguments for clients. It mirrors
// the checks in thinking.ParseRecord, which remains authoritative.
func thinkingInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"thought": {
				Type:        "string",
				Description: "Current thinking step",
			},
			"nextThoughtNeeded": {
				Type:        "boolean",
				Description: "Whether another thought step is needed",
			},
			"thoughtNumber": {
				Type:        "integer",
				Description: "Current thought number (minimum 1)",
				Minimum:     ptrFloat(1),
			},
			"totalThoughts": {
				Type:        "integer",
				Description: "Estimated total thoughts needed (minimum 1)",
				Minimum:     ptrFloat(1),
			},
			"isRevision": {
				Type:        "boolean",
				Description: "Whether this revises previous thinking",
			},
			"revisesThought": {
				Type:        "integer",
				Description: "Which thought number is being reconsidered",
				Minimum:     ptrFloat(1),
			},
			"branchFromThought": {
				Type:        "integer",
				Description: "Branching point thought number",
				Minimum:     ptrFloat(1),
			},
			"branchId": {
				Type:        "string",
				Description: "Branch identifier",
			},
			"needsMoreThoughts": {
				Type:        "boolean",
				Description: "If more thoughts are needed",
			},
		},
		Required: []string{"thought", "nextThoughtNeeded", "thoughtNumber", "totalThoughts"},
	}
}

func ptrFloat(v float64) *float64 {
	return &v
}
