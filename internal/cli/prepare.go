package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// PrepareArgs reorders args so flags come first and everything else follows
// a "--" terminator. Negative numbers such as -13 then reach the command as
// arguments instead of being read as shorthand flags.
//
// Flags that take a value keep the argument after them. Arguments already
// after a "--" stay positional.
func PrepareArgs(cmd *cobra.Command, args []string) []string {
	flags := make([]string, 0, len(args))
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case IsNumber(arg) || !strings.HasPrefix(arg, "-") || arg == "-":
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}

	if len(positional) == 0 {
		return flags
	}
	flags = append(flags, "--")
	return append(flags, positional...)
}

// takesValue reports whether arg names a flag that reads the next argument
// as its value.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		return f != nil && f.NoOptDefVal == ""
	}

	if len(arg) != 2 {
		return false
	}
	f := cmd.Flags().ShorthandLookup(arg[1:])
	if f == nil {
		f = cmd.PersistentFlags().ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
