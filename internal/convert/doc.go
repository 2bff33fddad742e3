// Package convert translates between tagged byte buffers and the two
// canonical scalar forms, float64 and int64.
//
// Every function takes an ir.ElementType and a buffer holding at least
// ir.ByteWidth(t) little-endian bytes. Complex encodings have no numeric
// interpretation here and always fail with an UNSUPPORTED_TYPE error.
// Undefined, StringChar8 and out-of-range tags read as zero and ignore writes.
//
// ParseNumber is the permissive text boundary used by the CLI: it never fails
// and degrades unparseable input to a zero value.
package convert
