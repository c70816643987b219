/*
Package domain contains the core models of a deterministic finite automaton.

It defines the structural entities (States, Transitions, the Automaton that owns
them) and the values produced when the automaton is inspected or queried
(Verdicts and Results). This package is kept pure and free of I/O so that the
validator, the simulator and every adapter share one vocabulary.

# Key Entities

  - State: a named node flagged initial and/or final, owning its outgoing transitions.
  - Transition: a (from, to, symbol) triple where symbol is exactly one character.
  - Automaton: the insertion-ordered set of states plus the flat transition list.
  - Verdict: the structural judgement on an automaton, as a list of typed Reasons.
  - Result: the outcome of walking one input string (Accepted or a Failure).
*/
package domain
