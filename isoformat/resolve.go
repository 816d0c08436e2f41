package isoformat

import (
	"isofields/field"
	"isofields/internal/diagnostic"
	"isofields/token"
)

// Result is the outcome of a successful resolution.
type Result struct {
	// Formatter prints and parses the chosen layout.
	Formatter *token.Formatter
	// ReducedPrecision is set when the date part is a prefix of a complete
	// date, such as a year alone or a weekyear with a week but no day.
	ReducedPrecision bool
	// DatePresent is set when any date field was placed.
	DatePresent bool
	// Consumed holds the fields placed in the layout.
	Consumed field.Set
	// Leftover holds the requested fields that could not be placed.
	Leftover field.Set
	// Diagnostics explains the decisions taken along the way.
	Diagnostics diagnostic.Diagnostics
}

// Resolve picks the ISO 8601 layout for fields. The input is not modified.
func Resolve(fields field.Set, opts Options) (*Result, error) {
	if fields.IsEmpty() {
		return nil, &ResolveError{Kind: ErrEmptyFieldSet, Fields: fields}
	}

	r := &resolver{
		opts:  opts,
		input: fields,
		work:  fields,
		bld:   token.NewBuilder(),
	}

	return r.resolve()
}

// ResolveInPlace is Resolve that also removes the consumed fields from
// *fields, leaving only the fields that could not be placed. On error *fields
// is left untouched.
func ResolveInPlace(fields *field.Set, opts Options) (*Result, error) {
	res, err := Resolve(*fields, opts)
	if err != nil {
		return nil, err
	}

	*fields = res.Leftover

	return res, nil
}

// ForFields resolves a list of field types and returns only the layout.
func ForFields(fields []field.Type, extended, strictISO bool) (*token.Formatter, error) {
	res, err := Resolve(field.NewSet(fields...), Options{Extended: extended, StrictISO: strictISO})
	if err != nil {
		return nil, err
	}

	return res.Formatter, nil
}

// resolver carries the state of one resolution. Planners consume fields from
// work, so a field placed by one planner is never seen by another.
type resolver struct {
	opts  Options
	input field.Set
	work  field.Set
	bld   *token.Builder
	diags diagnostic.Diagnostics
}

func (r *resolver) resolve() (*Result, error) {
	reduced, err := r.date()
	if err != nil {
		return nil, err
	}

	datePresent := r.work.Len() < r.input.Len()

	if err := r.time(reduced, datePresent); err != nil {
		return nil, err
	}

	if !r.bld.CanBuildFormatter() {
		return nil, rejectf(ErrNoValidFormat, r.input, "nothing could be placed")
	}

	f, err := r.bld.Build()
	if err != nil {
		return nil, rejectf(ErrNoValidFormat, r.input, "%v", err)
	}

	for _, t := range r.work.Types() {
		r.diags.AddWarning(diagnostic.CodeUnplacedField,
			"field has no place in the chosen layout", field.NewSet(t).String())
	}

	return &Result{
		Formatter:        f,
		ReducedPrecision: reduced,
		DatePresent:      datePresent,
		Consumed:         r.input.Without(r.work),
		Leftover:         r.work,
		Diagnostics:      r.diags,
	}, nil
}

// date dispatches to one date planner by field priority. Membership is only
// tested here; the planners do the consuming.
func (r *resolver) date() (bool, error) {
	switch {
	case r.work.Contains(field.MonthOfYear):
		return r.planned("calendar date", r.dateByMonth)
	case r.work.Contains(field.DayOfYear):
		return r.planned("ordinal date", r.dateByOrdinal)
	case r.work.Contains(field.WeekOfWeekyear):
		return r.planned("week date", r.dateByWeek)
	case r.work.Contains(field.DayOfMonth):
		return r.planned("calendar date", r.dateByMonth)
	case r.work.Contains(field.DayOfWeek):
		return r.planned("week date", r.dateByWeek)
	case r.work.Remove(field.Year):
		r.bld.Append(lookup(NameYearElement))
		r.noteReduced("year")

		return true, nil
	case r.work.Remove(field.Weekyear):
		r.bld.Append(lookup(NameWeekyearElement))
		r.noteReduced("weekyear")

		return true, nil
	default:
		return false, nil
	}
}

func (r *resolver) planned(layout string, planner func() (bool, error)) (bool, error) {
	before := r.work

	reduced, err := planner()
	if err != nil {
		return false, err
	}

	placed := before.Without(r.work)
	r.diags.AddInfo(diagnostic.CodeLayoutChosen, "date placed as "+layout, placed.String())

	if reduced {
		r.noteReduced(layout)
	}

	return reduced, nil
}

func (r *resolver) noteReduced(layout string) {
	r.diags.AddInfo(diagnostic.CodeReducedPrecision,
		layout+" has reduced precision", r.input.String())
}

func (r *resolver) appendSeparator() {
	if r.opts.Extended {
		r.bld.Literal("-")
	}
}

// checkNotStrictISO rejects a recognised non-ISO layout in strict mode and
// records its acceptance otherwise.
func (r *resolver) checkNotStrictISO(layout string, suggestion field.Type) error {
	if r.opts.StrictISO {
		return rejectf(ErrNonISOFormat, r.input, "%s is an extension to ISO 8601", layout)
	}

	r.diags.AddWarning(diagnostic.CodeNonISOLayout,
		layout+" accepted outside strict ISO 8601", r.input.String(), "add "+suggestion.String())

	return nil
}
