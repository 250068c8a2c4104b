// Package core contains the plumbing that executes a chain: the locomotive
// that runs one stage and its inspector, and the run options carried by the
// context (logger, metrics recorder, pipeline name, run id). It holds no
// business logic; package chain builds on it.
package core
