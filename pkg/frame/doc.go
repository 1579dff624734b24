// Package frame builds strict columnar tables from ordered column values.
//
// Construction runs a fixed pipeline: sequential binding of column
// definitions (each expression sees every column bound before it), batched
// shape and type validation, then unit-length recycling so all columns
// share the table's row count. There is no type coercion, no name
// mangling, and no recycling of columns longer than one element.
//
// This package contains:
//   - Column and Kind (the tagged-variant column representation)
//   - Table and the IsTable predicate
//   - FromColumns (validate + recycle an already-evaluated mapping)
//   - Build and the Evaluator seam to the expression engine
//   - The validation error taxonomy
//
// The Golden Rule: pkg/frame imports ONLY the standard library.
// The expression engine behind Build is an Evaluator implementation
// supplied by the caller (see internal/starlark for the Starlark one).
package frame
