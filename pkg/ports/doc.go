/*
Package ports defines the driven ports (interfaces) of the automaton engine.

They decouple the construction façade from where definitions come from, so a
definition can be read from a YAML/JSON file, built in memory, or supplied by a
test without the core knowing the difference.

# Key Interfaces

  - DefinitionLoader: produces a fully-formed construction request.
*/
package ports
