// Package ir provides the canonical value representation for seebinum.
//
// This package contains the element type registry and the tagged value type.
// All other internal packages import ir; ir imports nothing internal. This
// keeps the registry the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - A Value is a fixed 8-byte buffer plus its ElementType tag
//   - The tag alone defines how the bytes are interpreted, never the bytes
//   - All multi-byte encodings are little-endian
//   - Registry lookups are total: unknown tags behave as Undefined
package ir
