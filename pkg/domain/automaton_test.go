package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KongaYvan/Automates/pkg/domain"
)

func TestAutomaton_AddState(t *testing.T) {
	a := domain.NewAutomaton()
	require.NoError(t, a.AddState("A", true, false))
	require.NoError(t, a.AddState("B", false, true))

	t.Run("Duplicate", func(t *testing.T) {
		err := a.AddState("A", false, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateState)

		var dup *domain.DuplicateStateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "A", dup.Name)
	})

	t.Run("Empty Name", func(t *testing.T) {
		assert.ErrorIs(t, a.AddState("", false, false), domain.ErrEmptyStateName)
	})

	t.Run("Declaration Order", func(t *testing.T) {
		var names []string
		for _, s := range a.States() {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"A", "B"}, names)
	})

	t.Run("Lookup", func(t *testing.T) {
		s, ok := a.State("B")
		require.True(t, ok)
		assert.True(t, s.Final)

		_, ok = a.State("Z")
		assert.False(t, ok)
	})
}

func TestAutomaton_AddTransition(t *testing.T) {
	a := domain.NewAutomaton()
	require.NoError(t, a.AddState("A", true, false))
	require.NoError(t, a.AddState("B", false, true))

	require.NoError(t, a.AddTransition("A", "B", 'a'))
	require.NoError(t, a.AddTransition("B", "B", 'b'))

	tests := []struct {
		name     string
		from, to string
		missing  string
	}{
		{"Unknown Source", "X", "B", "X"},
		{"Unknown Destination", "A", "Y", "Y"},
		{"Source Checked First", "X", "Y", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.AddTransition(tt.from, tt.to, 'c')
			require.Error(t, err)

			var unknown *domain.UnknownStateError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, tt.missing, unknown.Name)
			assert.ErrorIs(t, err, domain.ErrUnknownState)
		})
	}

	t.Run("Shared Ownership", func(t *testing.T) {
		src, _ := a.State("A")
		all := a.Transitions()
		require.Len(t, all, 2)
		require.Len(t, src.Transitions, 1)
		assert.Same(t, src.Transitions[0], all[0])
	})

	t.Run("Alphabet", func(t *testing.T) {
		assert.Equal(t, []rune{'a', 'b'}, a.Alphabet())
	})
}

func TestDefinition_Build(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		def := domain.Definition{
			States: []domain.StateSpec{
				{Name: "A", Initial: true},
				{Name: "B", Final: true},
			},
			Transitions: []domain.TransitionSpec{
				{From: "A", To: "B", Symbol: 'a'},
			},
		}
		a, err := def.Build()
		require.NoError(t, err)
		assert.Equal(t, 2, a.Len())

		back := domain.Describe("", a)
		assert.Equal(t, def, back)
	})

	t.Run("Duplicate Stops Construction", func(t *testing.T) {
		def := domain.Definition{
			States: []domain.StateSpec{{Name: "A"}, {Name: "A"}},
		}
		a, err := def.Build()
		assert.Nil(t, a)
		assert.ErrorIs(t, err, domain.ErrDuplicateState)
	})

	t.Run("Unknown Endpoint", func(t *testing.T) {
		def := domain.Definition{
			States:      []domain.StateSpec{{Name: "A", Initial: true}},
			Transitions: []domain.TransitionSpec{{From: "B", To: "A", Symbol: 'x'}},
		}
		a, err := def.Build()
		assert.Nil(t, a)
		assert.ErrorIs(t, err, domain.ErrUnknownState)
	})
}

func TestState_Next(t *testing.T) {
	a := domain.NewAutomaton()
	require.NoError(t, a.AddState("A", true, false))
	require.NoError(t, a.AddState("B", false, true))
	require.NoError(t, a.AddTransition("A", "B", 'x'))

	s, _ := a.State("A")
	tr, ok := s.Next('x')
	require.True(t, ok)
	assert.Equal(t, "B", tr.To.Name)
	assert.Equal(t, "A --x--> B", tr.String())

	_, ok = s.Next('y')
	assert.False(t, ok)
}

func TestTransitionSpec_JSON(t *testing.T) {
	data, err := json.Marshal(domain.TransitionSpec{From: "A", To: "B", Symbol: 'ß'})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"A","to":"B","symbol":"ß"}`, string(data))

	var back domain.TransitionSpec
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 'ß', back.Symbol)

	assert.Error(t, json.Unmarshal([]byte(`{"from":"A","to":"B","symbol":"ab"}`), &back))
	assert.Error(t, json.Unmarshal([]byte(`{"from":"A","to":"B","symbol":""}`), &back))
}
