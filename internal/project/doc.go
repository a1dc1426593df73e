// Package project defines the fixed filesystem layout of a speculate-scaffolded
// project: the .speculate state directory, the docs tree, the agent rule
// directories, and the managed header targets. It also provides the read-only
// health checks behind the status command.
package project
