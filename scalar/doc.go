// Package scalar defines the element type rows hold.
//
// # Value
//
// Row code only ever demands the Value capability: a numeric coercion via
// ToNumber. The concrete Scalar type covers the common cases:
//
//   - Null: coerces to 0
//   - Int: int64 payload
//   - Float: float64 payload
//   - Bool: coerces to 1 or 0
//
// # Zero
//
// scalar.Zero is the canonical numeric-zero value. Sparse rows derived from a
// dense sequence use it as the value for every position they do not store.
package scalar
