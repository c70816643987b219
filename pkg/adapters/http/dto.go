package http

import (
	"github.com/KongaYvan/Automates/pkg/domain"
)

// Symbols cross the wire as one-character strings.

type StateDTO struct {
	Name    string `json:"name"`
	Initial bool   `json:"initial"`
	Final   bool   `json:"final"`
}

type TransitionDTO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Symbol string `json:"symbol"`
}

type AutomatonResponse struct {
	Name        string          `json:"name,omitempty"`
	States      []StateDTO      `json:"states"`
	Transitions []TransitionDTO `json:"transitions"`
	Alphabet    []string        `json:"alphabet"`
}

type ReasonDTO struct {
	Kind    string   `json:"kind"`
	State   string   `json:"state,omitempty"`
	Symbol  string   `json:"symbol,omitempty"`
	Targets []string `json:"targets,omitempty"`
	Count   int      `json:"count,omitempty"`
	Message string   `json:"message"`
}

type VerdictResponse struct {
	Deterministic bool        `json:"deterministic"`
	Reasons       []ReasonDTO `json:"reasons"`
}

type EvaluateRequest struct {
	Input *string `json:"input"`
}

type FailureDTO struct {
	Kind    string      `json:"kind"`
	Index   *int        `json:"index,omitempty"`
	Symbol  string      `json:"symbol,omitempty"`
	State   string      `json:"state,omitempty"`
	Reasons []ReasonDTO `json:"reasons,omitempty"`
}

type EvaluateResponse struct {
	Input       string      `json:"input"`
	Accepted    bool        `json:"accepted"`
	Failure     *FailureDTO `json:"failure,omitempty"`
	Path        []string    `json:"path"`
	Explanation string      `json:"explanation"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func mapAutomatonFromDomain(name string, a *domain.Automaton) AutomatonResponse {
	resp := AutomatonResponse{
		Name:        name,
		States:      []StateDTO{},
		Transitions: []TransitionDTO{},
		Alphabet:    []string{},
	}
	for _, s := range a.States() {
		resp.States = append(resp.States, StateDTO{Name: s.Name, Initial: s.Initial, Final: s.Final})
	}
	for _, t := range a.Transitions() {
		resp.Transitions = append(resp.Transitions, TransitionDTO{
			From:   t.From.Name,
			To:     t.To.Name,
			Symbol: string(t.Symbol),
		})
	}
	for _, c := range a.Alphabet() {
		resp.Alphabet = append(resp.Alphabet, string(c))
	}
	return resp
}

func mapReasonsFromDomain(reasons []domain.Reason) []ReasonDTO {
	out := make([]ReasonDTO, 0, len(reasons))
	for _, r := range reasons {
		dto := ReasonDTO{
			Kind:    string(r.Kind),
			State:   r.State,
			Targets: r.Targets,
			Count:   r.Count,
			Symbol:  r.SymbolText(),
			Message: r.String(),
		}
		out = append(out, dto)
	}
	return out
}

func mapVerdictFromDomain(v domain.Verdict) VerdictResponse {
	return VerdictResponse{
		Deterministic: v.Deterministic(),
		Reasons:       mapReasonsFromDomain(v.Reasons),
	}
}

func mapResultFromDomain(input string, res domain.Result, explanation string) EvaluateResponse {
	resp := EvaluateResponse{
		Input:       input,
		Accepted:    res.Accepted,
		Path:        res.Path,
		Explanation: explanation,
	}
	if resp.Path == nil {
		resp.Path = []string{}
	}
	if f := res.Failure; f != nil {
		dto := &FailureDTO{
			Kind:  string(f.Kind),
			State: f.State,
		}
		switch f.Kind {
		case domain.FailureNoTransition:
			idx := f.Index
			dto.Index = &idx
			dto.Symbol = string(f.Symbol)
		case domain.FailureNotDeterministic:
			dto.Reasons = mapReasonsFromDomain(f.Reasons)
		}
		resp.Failure = dto
	}
	return resp
}
