/*
Package observability provides tools for monitoring an automates engine.

It includes Prometheus metrics fed by the engine lifecycle hooks, a structured
logging hook set for auditing queries, and Chain for combining several hook
sets into one.
*/
package observability
