// Package render formats tagged numeric values as text.
//
// A rendered line shows the encoding name right-aligned in a ten column
// field, the numeric value, and the raw storage bits between two flanks:
//
//	fixed12_12 3(0x003000)
//	    uint32 3(0x00000003)
//	   float16 3.140625 -> 0x4248
//
// Raw bits print as upper-case hex (default) or MSB-first binary. Fractional
// encodings print as decimal (default) or hex-float.
package render
