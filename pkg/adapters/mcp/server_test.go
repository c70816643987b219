package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/runner"
)

func newServer(t *testing.T, initial ...string) *Server {
	t.Helper()
	req := automates.ConstructionRequest{
		Name: "ab",
		States: []automates.StateSpec{
			{Name: "A", Initial: true},
			{Name: "B", Final: true},
		},
		Transitions: []automates.TransitionSpec{
			{From: "A", To: "B", Symbol: 'a'},
			{From: "B", To: "A", Symbol: 'b'},
		},
	}
	for _, name := range initial {
		for i := range req.States {
			if req.States[i].Name == name {
				req.States[i].Initial = true
			}
		}
	}
	eng, err := automates.New(req)
	require.NoError(t, err)
	return NewServer(eng)
}

func TestHandleEvaluate(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	resp, err := s.handleEvaluate(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": "aba"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, []string{"A", "B", "A", "B"}, resp.Path)
	assert.Empty(t, resp.Explanation)

	resp, err = s.handleEvaluate(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": "ac"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	require.NotNil(t, resp.Failure)
	assert.Equal(t, domain.FailureNoTransition, resp.Failure.Kind)
	assert.Equal(t, 1, resp.Failure.Index)
	assert.Equal(t, 'c', resp.Failure.Symbol)
}

func TestHandleEvaluate_InvalidArgs(t *testing.T) {
	s := newServer(t)

	_, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)

	_, err = s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "a\xff"})
	assert.Error(t, err)
}

func TestHandleEvaluate_ControlCharacter(t *testing.T) {
	s := newServer(t)

	_, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "a\a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrControlCharacter)
}

func TestHandleExplain(t *testing.T) {
	s := newServer(t)

	resp, err := s.handleExplain(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "ab"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Equal(t, `string fully consumed but state "A" is not final`, resp.Explanation)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"failure":{"kind":"not_final","state":"A"}`)
}

func TestHandleValidate(t *testing.T) {
	resp, err := newServer(t).handleValidate(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.True(t, resp.Deterministic)
	assert.Empty(t, resp.Reasons)
	assert.Equal(t, "ab", resp.Alphabet)

	resp, err = newServer(t, "B").handleValidate(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.False(t, resp.Deterministic)
	assert.Equal(t, []string{"more than one initial state (2)"}, resp.Reasons)
}

func TestHandleGraph(t *testing.T) {
	s := newServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"input": "a"}
	res, err := s.handleGraph(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text.Text, "graph LR"))
	assert.Contains(t, text.Text, "class s1 accepted;")
}

func TestAutomatonResource(t *testing.T) {
	contents, err := newServer(t).handleAutomatonResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, AutomatonURI, text.URI)

	var def domain.Definition
	require.NoError(t, json.Unmarshal([]byte(text.Text), &def))
	assert.Equal(t, "ab", def.Name)
	assert.Len(t, def.States, 2)
	assert.Equal(t, 'a', def.Transitions[0].Symbol)
}
