// Package chain builds typed, linear pipelines out of rop.Stage values and
// runs them.
//
// A chain starts with Pipeline and grows with AndThen; every stage's input
// type must equal the previous stage's output type, which the compiler checks.
// Each stage is paired with an inspector that sees its output and may stop the
// run with rop.Cancel before the next stage starts.
//
//	c := chain.AndThen(
//		chain.Pipeline(load, rop.Noop[[]int64]()),
//		render, rop.Noop[string]())
//	res := c.Run(ctx, struct{}{})
//
// Run returns one rop.Outcome: succeeded with the last stage's output, failed
// with the first stage error (unchanged), or cancelled.
//
// Go methods cannot introduce type parameters, so AndThen is a function and
// the newest stage wraps the chain built before it. Execution still walks the
// stages in the order they were added.
package chain
