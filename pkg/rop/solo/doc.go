// Package solo turns plain functions into rop.Stage values and folds a
// finished rop.Outcome into a single value.
//
// Highlights:
// - Succeed/Fail: constant stages that ignore their input
// - Try: call a function (Out, error)
// - Map: transform the value with a function that cannot fail
// - Validate/FailOnError: pass the value through or fail
// - Tee: side effect, value unchanged
// - Finally: reduce an outcome via success/error/cancel handlers
package solo
