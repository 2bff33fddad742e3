package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/seebinum/internal/ir"
	"github.com/roach88/seebinum/internal/render"
)

// RootOptions holds the command's flags.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Type  string // initial preferred type keyword
	Raw   bool   // initial raw mode
	Show  string // "hex" | "binary"
	Float string // "dec" | "hex"

	// TraceIDs allows overriding the trace id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	TraceIDs TraceIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

const rootLong = `SeeBiNum shows how a number is stored in binary across integer,
floating-point and fixed-point encodings, and performs arithmetic in a
chosen encoding.

Arguments are read left to right. Numbers start with a digit or '-' and a
digit, and may be comma separated (1,2,3). Keywords change how the numbers
after them are read and shown:

  showbinary showhex          display raw bits as binary or hex (default)
  showhexfloat showdecfloat   display floats as hex or decimal (default)
  raw num                     treat input as raw bit data or as number (default)
  add subtract multiply divide dot
                              apply operation to following numbers
  float16 bfloat16 float32 float64
                              set floating point data type
  uint8 uint16 uint32 uint64 int8 int16 int32 int64
                              set integer data type
  fixed12_12 fixed16_16 fixed8_24
                              set fixed precision data type

With one number, every encoding of it is listed. With operations, each
operation's operands and result are shown.`

const rootExample = `  seebinum 3.14159
  seebinum -13
  seebinum showbinary -13
  seebinum showhex -13
  seebinum 0x4240
  seebinum 0b1101
  seebinum float16 3.14
  seebinum float16 raw 0x4240
  seebinum uint32 mul 3 2 add 3 2 subtract 3 2 dot 1 2 3 4
  seebinum float32 0x2.4p0
  seebinum fixed12_12 sub 3 2`

// NewRootCommand creates the seebinum command.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the seebinum command bound to opts.
// Flag parsing writes into opts; TraceIDs is kept as given.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seebinum [flags] [keywords and numbers...]",
		Short:         "See numbers in binary",
		Long:          rootLong,
		Example:       rootExample,
		Version:       ir.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeebinum(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.Flags().StringVar(&opts.Type, "type", "", "initial data type, as the type keywords (e.g. float16)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "treat numbers as raw bit data")
	cmd.Flags().StringVar(&opts.Show, "show", "hex", "raw bits display (hex|binary)")
	cmd.Flags().StringVar(&opts.Float, "float", "dec", "float display (dec|hex)")

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// settings converts the flags into the initial parse state.
func (o *RootOptions) settings() (Settings, error) {
	s := Settings{Raw: o.Raw}

	if o.Type != "" {
		t, ok := ir.LookupElementType(o.Type)
		if !ok {
			return s, fmt.Errorf("invalid type %q", o.Type)
		}
		s.Type = t
	}

	switch o.Show {
	case "hex":
	case "binary", "bin":
		s.Mode |= render.ShowBinary
	default:
		return s, fmt.Errorf("invalid show %q: must be hex or binary", o.Show)
	}

	switch o.Float {
	case "dec":
	case "hex":
		s.Mode |= render.ShowHexFloat
	default:
		return s, fmt.Errorf("invalid float %q: must be dec or hex", o.Float)
	}
	return s, nil
}

func (o *RootOptions) traceIDs() TraceIDGenerator {
	if o.TraceIDs == nil {
		return UUIDv7Generator{}
	}
	return o.TraceIDs
}
