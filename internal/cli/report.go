package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/engine"
	"github.com/roach88/seebinum/internal/ir"
	"github.com/roach88/seebinum/internal/render"
)

// Report is the outcome of one invocation: operation results, a listing of
// a single number in every encoding, or a plain list of numbers.
//
// The exported fields form the JSON payload; WriteText renders the same
// content as text.
type Report struct {
	Operations []OperationReport `json:"operations,omitempty"`
	Listing    *ListingReport    `json:"listing,omitempty"`
	Values     []ValueReport     `json:"values,omitempty"`

	mode      render.Mode
	preferred ir.ElementType
	results   []engine.Result
	failed    *engine.StepError
	listing   *listing
	numbers   []ir.Value
}

// OperationReport is one performed step.
type OperationReport struct {
	Operation string        `json:"operation"`
	Operands  []ValueReport `json:"operands"`
	Result    *ValueReport  `json:"result,omitempty"` // nil when the step had no operands or failed
}

// ListingReport shows one number in every numeric encoding.
type ListingReport struct {
	ToBinary   []ValueReport `json:"to_binary"`
	FromBinary []ValueReport `json:"from_binary"`
}

// ValueReport is one rendered value.
type ValueReport struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Raw       string `json:"raw"`
	Bytes     string `json:"bytes"`
	Preferred bool   `json:"preferred,omitempty"`
}

type listing struct {
	value float64
	bits  int64
}

// buildReport performs the parsed invocation. On failure it returns the
// report gathered so far together with the error.
func buildReport(inv *Invocation, logger *slog.Logger) (*Report, error) {
	r := &Report{mode: inv.Mode, preferred: inv.Type}

	switch {
	case inv.Sequence.Len() > 0:
		results, err := engine.Run(inv.Sequence, inv.Numbers)
		r.results = results
		for _, res := range results {
			logger.Debug("operation performed",
				"op", res.Step.Op,
				"begin", res.Step.Range.Begin,
				"end", res.Step.Range.End,
				"type", res.Value.Type)
			op, rerr := newOperationReport(res, r.mode)
			if rerr != nil {
				return r, rerr
			}
			r.Operations = append(r.Operations, op)
		}
		if err != nil {
			var stepErr *engine.StepError
			if errors.As(err, &stepErr) {
				r.failed = stepErr
				op, rerr := newOperationReport(engine.Result{Step: stepErr.Step, Operands: stepErr.Operands}, r.mode)
				if rerr == nil {
					r.Operations = append(r.Operations, op)
				}
			}
			return r, err
		}

	case len(inv.Numbers) == 1:
		v := inv.Numbers[0]
		f, err := convert.ToDouble(v)
		if err != nil {
			return r, err
		}
		bits, err := convert.ToInt64(v)
		if err != nil {
			return r, err
		}
		logger.Debug("listing number", "type", v.Type, "value", f, "bits", bits)
		r.listing = &listing{value: f, bits: bits}
		if r.Listing, err = newListingReport(f, bits, inv.Type, r.mode); err != nil {
			return r, err
		}

	case len(inv.Numbers) > 1:
		r.numbers = inv.Numbers
		for _, v := range inv.Numbers {
			if v.Type == ir.Undefined {
				continue
			}
			vr, err := newValueReport(v, r.mode)
			if err != nil {
				return r, err
			}
			r.Values = append(r.Values, vr)
		}
	}
	return r, nil
}

// WriteText renders r as the text views.
func (r *Report) WriteText(w io.Writer) error {
	p := render.NewPrinter(w, r.mode)

	switch {
	case len(r.results) > 0 || r.failed != nil:
		for _, res := range r.results {
			if _, err := fmt.Fprintf(w, "Operands to %s:\n", res.Step.Op); err != nil {
				return err
			}
			if err := p.Values(res.Operands); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Result from %s:\n", res.Step.Op); err != nil {
				return err
			}
			if err := p.Values([]ir.Value{res.Value}); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if r.failed != nil {
			if _, err := fmt.Fprintf(w, "Operands to %s:\n", r.failed.Step.Op); err != nil {
				return err
			}
			return p.Values(r.failed.Operands)
		}

	case r.listing != nil:
		if _, err := fmt.Fprintln(w, "To binary:"); err != nil {
			return err
		}
		if err := p.ToBinary(r.listing.value, r.preferred); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "\nFrom binary:"); err != nil {
			return err
		}
		if err := p.FromBinary(r.listing.bits, r.preferred); err != nil {
			return err
		}

	default:
		return p.Values(r.numbers)
	}
	return nil
}

func newOperationReport(res engine.Result, mode render.Mode) (OperationReport, error) {
	op := OperationReport{
		Operation: res.Step.Op.String(),
		Operands:  make([]ValueReport, 0, len(res.Operands)),
	}
	for _, v := range res.Operands {
		vr, err := newValueReport(v, mode)
		if err != nil {
			return op, err
		}
		op.Operands = append(op.Operands, vr)
	}
	if res.Value.Type != ir.Undefined {
		vr, err := newValueReport(res.Value, mode)
		if err != nil {
			return op, err
		}
		op.Result = &vr
	}
	return op, nil
}

func newListingReport(f float64, bits int64, preferred ir.ElementType, mode render.Mode) (*ListingReport, error) {
	to, err := render.ToBinaryValues(f)
	if err != nil {
		return nil, err
	}
	l := &ListingReport{}
	if l.ToBinary, err = newValueReports(to, preferred, mode); err != nil {
		return nil, err
	}
	if l.FromBinary, err = newValueReports(render.FromBinaryValues(bits), preferred, mode); err != nil {
		return nil, err
	}
	return l, nil
}

func newValueReports(values []ir.Value, preferred ir.ElementType, mode render.Mode) ([]ValueReport, error) {
	out := make([]ValueReport, 0, len(values))
	for _, v := range values {
		vr, err := newValueReport(v, mode)
		if err != nil {
			return nil, err
		}
		vr.Preferred = v.Type == preferred
		out = append(out, vr)
	}
	return out, nil
}

func newValueReport(v ir.Value, mode render.Mode) (ValueReport, error) {
	number, err := render.Number(v.Type, v.Bytes[:], mode)
	if err != nil {
		return ValueReport{}, err
	}
	raw, err := render.Raw(v.Type, v.Bytes[:], mode)
	if err != nil {
		return ValueReport{}, err
	}
	return ValueReport{
		Type:  ir.Name(v.Type),
		Value: number,
		Raw:   raw,
		Bytes: strings.TrimSpace(render.Bytes(v.Data())),
	}, nil
}
