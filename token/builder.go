package token

import (
	"isofields/field"
)

// Builder accumulates layout elements. Methods return the receiver so calls
// can be chained. A Builder is not safe for concurrent use.
type Builder struct {
	elems []element
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(e element) *Builder {
	b.elems = append(b.elems, e)
	return b
}

// Literal appends fixed text. Parsing matches it ignoring case.
func (b *Builder) Literal(text string) *Builder {
	if text == "" {
		return b
	}

	return b.add(&literal{text: text})
}

// Decimal appends an unsigned number printed with at least minDigits digits and
// parsed with at most maxDigits digits.
func (b *Builder) Decimal(ft field.Type, minDigits, maxDigits int) *Builder {
	return b.add(newNumber(ft, minDigits, maxDigits, false, false))
}

// FixedDecimal appends an unsigned number printed and parsed with exactly
// digits digits.
func (b *Builder) FixedDecimal(ft field.Type, digits int) *Builder {
	return b.add(newNumber(ft, digits, digits, false, true))
}

// SignedDecimal is Decimal accepting a leading '+' or '-' when parsing.
func (b *Builder) SignedDecimal(ft field.Type, minDigits, maxDigits int) *Builder {
	return b.add(newNumber(ft, minDigits, maxDigits, true, false))
}

func newNumber(ft field.Type, minDigits, maxDigits int, signed, fixed bool) *number {
	if !ft.IsValid() {
		panic("invalid field type: " + ft.String())
	}

	if minDigits < 1 {
		minDigits = 1
	}

	if maxDigits < minDigits {
		maxDigits = minDigits
	}

	return &number{ft: ft, minDigits: minDigits, maxDigits: maxDigits, signed: signed, fixed: fixed}
}

func (b *Builder) Year(minDigits, maxDigits int) *Builder {
	return b.SignedDecimal(field.Year, minDigits, maxDigits)
}

func (b *Builder) Weekyear(minDigits, maxDigits int) *Builder {
	return b.SignedDecimal(field.Weekyear, minDigits, maxDigits)
}

func (b *Builder) MonthOfYear(minDigits int) *Builder {
	return b.Decimal(field.MonthOfYear, minDigits, 2)
}

func (b *Builder) DayOfMonth(minDigits int) *Builder {
	return b.Decimal(field.DayOfMonth, minDigits, 2)
}

func (b *Builder) DayOfYear(minDigits int) *Builder {
	return b.Decimal(field.DayOfYear, minDigits, 3)
}

func (b *Builder) WeekOfWeekyear(minDigits int) *Builder {
	return b.Decimal(field.WeekOfWeekyear, minDigits, 2)
}

func (b *Builder) DayOfWeek(minDigits int) *Builder {
	return b.Decimal(field.DayOfWeek, minDigits, 1)
}

func (b *Builder) HourOfDay(minDigits int) *Builder {
	return b.Decimal(field.HourOfDay, minDigits, 2)
}

func (b *Builder) MinuteOfHour(minDigits int) *Builder {
	return b.Decimal(field.MinuteOfHour, minDigits, 2)
}

func (b *Builder) SecondOfMinute(minDigits int) *Builder {
	return b.Decimal(field.SecondOfMinute, minDigits, 2)
}

func (b *Builder) MillisOfSecond(minDigits int) *Builder {
	return b.Decimal(field.MillisOfSecond, minDigits, 3)
}

func (b *Builder) FractionOfSecond(minDigits, maxDigits int) *Builder {
	return b.fraction(field.SecondOfMinute, minDigits, maxDigits)
}

func (b *Builder) FractionOfMinute(minDigits, maxDigits int) *Builder {
	return b.fraction(field.MinuteOfHour, minDigits, maxDigits)
}

func (b *Builder) FractionOfHour(minDigits, maxDigits int) *Builder {
	return b.fraction(field.HourOfDay, minDigits, maxDigits)
}

func (b *Builder) fraction(unit field.Type, minDigits, maxDigits int) *Builder {
	minDigits = max(minDigits, 1)
	maxDigits = min(max(maxDigits, minDigits), 9)

	return b.add(&fraction{unit: unit, minDigits: min(minDigits, maxDigits), maxDigits: maxDigits})
}

// TimeZoneOffset appends a zone offset. zeroText, when not empty, is printed
// for a zero offset and accepted when parsing. minFields and maxFields count
// hours, minutes and seconds.
func (b *Builder) TimeZoneOffset(zeroText string, showSeparators bool, minFields, maxFields int) *Builder {
	minFields = max(minFields, 1)
	maxFields = max(maxFields, minFields)

	return b.add(&offset{
		zeroText:   zeroText,
		separators: showSeparators,
		minFields:  minFields,
		maxFields:  maxFields,
	})
}

// Append copies the elements of f into b.
func (b *Builder) Append(f *Formatter) *Builder {
	if f == nil {
		panic("cannot append nil formatter")
	}

	b.elems = append(b.elems, f.elems...)

	return b
}

// Optional appends a parse-only element that accepts f or nothing.
func (b *Builder) Optional(f *Formatter) *Builder {
	if f == nil || !f.CanParse() {
		panic("optional element requires a parser")
	}

	return b.add(&optional{elems: f.elems})
}

// Alternatives appends a parse-only element accepting any one of fs. When
// allowEmpty is set, matching none of them is not an error.
func (b *Builder) Alternatives(allowEmpty bool, fs ...*Formatter) *Builder {
	if len(fs) == 0 {
		panic("alternatives require at least one parser")
	}

	branches := make([][]element, 0, len(fs))

	for _, f := range fs {
		if f == nil || !f.CanParse() {
			panic("alternative element requires a parser")
		}

		branches = append(branches, f.elems)
	}

	return b.add(&alternatives{branches: branches, allowEmpty: allowEmpty})
}

func (b *Builder) Len() int {
	return len(b.elems)
}

// CanBuildFormatter reports whether the elements so far form a non-empty
// layout that can print.
func (b *Builder) CanBuildFormatter() bool {
	if len(b.elems) == 0 {
		return false
	}

	for _, e := range b.elems {
		if !e.isPrinter() {
			return false
		}
	}

	return true
}

// CanBuildParser reports whether the elements so far form a non-empty layout
// that can parse.
func (b *Builder) CanBuildParser() bool {
	if len(b.elems) == 0 {
		return false
	}

	for _, e := range b.elems {
		if !e.isParser() {
			return false
		}
	}

	return true
}

// Build returns a Formatter over a snapshot of the current elements.
func (b *Builder) Build() (*Formatter, error) {
	if len(b.elems) == 0 {
		return nil, ErrEmptyBuilder
	}

	elems := make([]element, len(b.elems))
	copy(elems, b.elems)

	return &Formatter{elems: elems}, nil
}

// MustBuild is Build for layouts that are known to be valid.
func (b *Builder) MustBuild() *Formatter {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}

	return f
}
