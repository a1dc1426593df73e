// Package header maintains the managed block at the top of CLAUDE.md and
// AGENTS.md. The block is delimited by boundary comment tokens so it can be
// detected, replaced, and removed without disturbing content users add above
// or below it.
package header
