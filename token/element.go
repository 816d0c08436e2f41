package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"isofields/field"
)

// element is a single step of a layout.
type element interface {
	printTo(sb *strings.Builder, v Values) error
	// parseInto returns the position after the consumed text, or the position
	// of the failure and false.
	parseInto(text string, pos int, v *Values) (int, bool)
	isPrinter() bool
	isParser() bool
	describe(sb *strings.Builder)
}

// parseSequence runs elems in order. Numeric elements leave enough digits for
// the numeric elements that directly follow them.
func parseSequence(elems []element, text string, pos int, v *Values) (int, bool) {
	for i, e := range elems {
		var ok bool

		if n, isNum := e.(*number); isNum {
			pos, ok = n.parseReserving(text, pos, v, reservedAfter(elems, i))
		} else {
			pos, ok = e.parseInto(text, pos, v)
		}

		if !ok {
			return pos, false
		}
	}

	return pos, true
}

func reservedAfter(elems []element, i int) int {
	reserved := 0

	for _, e := range elems[i+1:] {
		n, ok := e.(*number)
		if !ok {
			break
		}

		reserved += n.minDigits
	}

	return reserved
}

func describeAll(sb *strings.Builder, elems []element) {
	for _, e := range elems {
		e.describe(sb)
	}
}

// --- literal ---

type literal struct {
	text string
}

func (l *literal) printTo(sb *strings.Builder, _ Values) error {
	sb.WriteString(l.text)
	return nil
}

func (l *literal) parseInto(text string, pos int, _ *Values) (int, bool) {
	end := pos + len(l.text)
	if end > len(text) || !strings.EqualFold(text[pos:end], l.text) {
		return pos, false
	}

	return end, true
}

func (l *literal) isPrinter() bool { return true }
func (l *literal) isParser() bool  { return true }

// describe quotes runs of letters so they cannot be mistaken for field letters.
func (l *literal) describe(sb *strings.Builder) {
	quoted := false

	for _, r := range l.text {
		letter := unicode.IsLetter(r)
		if letter != quoted {
			sb.WriteByte('\'')
			quoted = letter
		}

		sb.WriteRune(r)
	}

	if quoted {
		sb.WriteByte('\'')
	}
}

// --- number ---

type number struct {
	ft        field.Type
	minDigits int
	maxDigits int
	signed    bool
	fixed     bool
}

func (n *number) printTo(sb *strings.Builder, v Values) error {
	val, ok := v.Get(n.ft)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, n.ft)
	}

	if val < 0 {
		sb.WriteByte('-')
		val = -val
	}

	digits := strconv.Itoa(val)
	for i := len(digits); i < n.minDigits; i++ {
		sb.WriteByte('0')
	}

	sb.WriteString(digits)

	return nil
}

func (n *number) parseInto(text string, pos int, v *Values) (int, bool) {
	return n.parseReserving(text, pos, v, 0)
}

func (n *number) parseReserving(text string, pos int, v *Values, reserved int) (int, bool) {
	start := pos
	negative := false

	if n.signed && pos < len(text) && (text[pos] == '-' || text[pos] == '+') {
		negative = text[pos] == '-'
		pos++
	}

	available := countDigits(text, pos)

	limit := n.maxDigits
	if n.fixed {
		limit = n.minDigits
		if available < limit {
			return start, false
		}
	} else if spare := available - reserved; spare < limit {
		limit = spare
	}

	if limit > available {
		limit = available
	}

	if limit < 1 {
		return start, false
	}

	val, err := strconv.Atoi(text[pos : pos+limit])
	if err != nil {
		return start, false
	}

	if negative {
		val = -val
	}

	v.Set(n.ft, val)

	return pos + limit, true
}

func (n *number) isPrinter() bool { return true }
func (n *number) isParser() bool  { return true }

func (n *number) describe(sb *strings.Builder) {
	letter := string(n.ft.PatternLetter())
	sb.WriteString(strings.Repeat(letter, n.minDigits))
}

func countDigits(text string, pos int) int {
	n := 0
	for pos+n < len(text) && text[pos+n] >= '0' && text[pos+n] <= '9' {
		n++
	}

	return n
}

// --- fraction ---

// fraction prints and parses the decimal fraction of unit, carrying the value
// in the fields below unit.
type fraction struct {
	unit      field.Type
	minDigits int
	maxDigits int
}

func unitMillis(unit field.Type) int64 {
	switch unit {
	case field.HourOfDay:
		return 3_600_000
	case field.MinuteOfHour:
		return 60_000
	case field.SecondOfMinute:
		return 1_000
	default:
		panic("fraction unit must be hourOfDay, minuteOfHour or secondOfMinute, got " + unit.String())
	}
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}

	return p
}

func (f *fraction) millisWithin(v Values) (int64, error) {
	ms, hasMillis := v.Get(field.MillisOfSecond)
	if f.unit == field.SecondOfMinute && !hasMillis {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field.MillisOfSecond)
	}

	total := int64(ms)

	if f.unit == field.HourOfDay || f.unit == field.MinuteOfHour {
		sec, _ := v.Get(field.SecondOfMinute)
		total += int64(sec) * 1_000
	}

	if f.unit == field.HourOfDay {
		minute, _ := v.Get(field.MinuteOfHour)
		total += int64(minute) * 60_000
	}

	return total, nil
}

func (f *fraction) printTo(sb *strings.Builder, v Values) error {
	within, err := f.millisWithin(v)
	if err != nil {
		return err
	}

	scaled := within * pow10(f.maxDigits) / unitMillis(f.unit)

	digits := strconv.FormatInt(scaled, 10)
	if pad := f.maxDigits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	end := len(digits)
	for end > f.minDigits && digits[end-1] == '0' {
		end--
	}

	sb.WriteString(digits[:end])

	return nil
}

func (f *fraction) parseInto(text string, pos int, v *Values) (int, bool) {
	n := min(countDigits(text, pos), f.maxDigits)
	if n < 1 {
		return pos, false
	}

	num, err := strconv.ParseInt(text[pos:pos+n], 10, 64)
	if err != nil {
		return pos, false
	}

	ms := num * unitMillis(f.unit) / pow10(n)

	switch f.unit {
	case field.HourOfDay:
		v.Set(field.MinuteOfHour, int(ms/60_000))
		v.Set(field.SecondOfMinute, int(ms%60_000/1_000))
	case field.MinuteOfHour:
		v.Set(field.SecondOfMinute, int(ms/1_000))
	}

	v.Set(field.MillisOfSecond, int(ms%1_000))

	return pos + n, true
}

func (f *fraction) isPrinter() bool { return true }
func (f *fraction) isParser() bool  { return true }

func (f *fraction) describe(sb *strings.Builder) {
	if f.unit == field.SecondOfMinute {
		sb.WriteString(strings.Repeat("S", f.minDigits))
		return
	}

	fmt.Fprintf(sb, "{%s fraction}", f.unit)
}

// --- zone offset ---

type offset struct {
	zeroText   string
	separators bool
	minFields  int
	maxFields  int
}

func (o *offset) printTo(sb *strings.Builder, v Values) error {
	off, ok := v.Offset()
	if !ok {
		return ErrMissingOffset
	}

	if off == 0 && o.zeroText != "" {
		sb.WriteString(o.zeroText)
		return nil
	}

	if off < 0 {
		sb.WriteByte('-')
		off = -off
	} else {
		sb.WriteByte('+')
	}

	hours, minutes, seconds := off/3600, off%3600/60, off%60

	fmt.Fprintf(sb, "%02d", hours)

	if o.maxFields < 2 {
		return nil
	}

	showSeconds := o.maxFields >= 3 && (seconds != 0 || o.minFields >= 3)
	if o.minFields >= 2 || minutes != 0 || showSeconds {
		o.writeSeparator(sb)
		fmt.Fprintf(sb, "%02d", minutes)
	}

	if showSeconds {
		o.writeSeparator(sb)
		fmt.Fprintf(sb, "%02d", seconds)
	}

	return nil
}

func (o *offset) writeSeparator(sb *strings.Builder) {
	if o.separators {
		sb.WriteByte(':')
	}
}

func (o *offset) parseInto(text string, pos int, v *Values) (int, bool) {
	if o.zeroText != "" {
		end := pos + len(o.zeroText)
		if end <= len(text) && strings.EqualFold(text[pos:end], o.zeroText) {
			v.SetOffset(0)
			return end, true
		}
	}

	if pos >= len(text) || (text[pos] != '+' && text[pos] != '-') {
		return pos, false
	}

	sign := 1
	if text[pos] == '-' {
		sign = -1
	}

	cur := pos + 1

	hours, ok := twoDigits(text, cur)
	if !ok || hours > 23 {
		return pos, false
	}

	cur += 2
	total := hours * 3600

	for part := 2; part <= min(o.maxFields, 3); part++ {
		next := cur
		if next < len(text) && text[next] == ':' {
			next++
		}

		n, ok := twoDigits(text, next)
		if !ok || n > 59 {
			break
		}

		if part == 2 {
			total += n * 60
		} else {
			total += n
		}

		cur = next + 2
	}

	v.SetOffset(sign * total)

	return cur, true
}

func twoDigits(text string, pos int) (int, bool) {
	if countDigits(text, pos) < 2 {
		return 0, false
	}

	return int(text[pos]-'0')*10 + int(text[pos+1]-'0'), true
}

func (o *offset) isPrinter() bool { return true }
func (o *offset) isParser() bool  { return true }

func (o *offset) describe(sb *strings.Builder) {
	if o.separators {
		sb.WriteString("ZZ")
		return
	}

	sb.WriteString("Z")
}

// --- optional ---

// optional is parse-only: a failed sub-layout consumes nothing and sets nothing.
type optional struct {
	elems []element
}

func (o *optional) printTo(*strings.Builder, Values) error {
	return ErrNotPrinter
}

func (o *optional) parseInto(text string, pos int, v *Values) (int, bool) {
	trial := *v

	end, ok := parseSequence(o.elems, text, pos, &trial)
	if !ok {
		return pos, true
	}

	*v = trial

	return end, true
}

func (o *optional) isPrinter() bool { return false }
func (o *optional) isParser() bool  { return true }

func (o *optional) describe(sb *strings.Builder) {
	sb.WriteByte('[')
	describeAll(sb, o.elems)
	sb.WriteByte(']')
}

// --- alternatives ---

type alternatives struct {
	branches   [][]element
	allowEmpty bool
}

func (a *alternatives) printTo(*strings.Builder, Values) error {
	return ErrNotPrinter
}

func (a *alternatives) parseInto(text string, pos int, v *Values) (int, bool) {
	best := -1
	failedAt := pos

	var bestValues Values

	for _, branch := range a.branches {
		trial := *v

		end, ok := parseSequence(branch, text, pos, &trial)
		if !ok {
			failedAt = max(failedAt, end)
			continue
		}

		if end > best {
			best, bestValues = end, trial
			if end >= len(text) {
				break
			}
		}
	}

	if best < 0 {
		if a.allowEmpty {
			return pos, true
		}

		return failedAt, false
	}

	*v = bestValues

	return best, true
}

func (a *alternatives) isPrinter() bool { return false }
func (a *alternatives) isParser() bool  { return true }

func (a *alternatives) describe(sb *strings.Builder) {
	sb.WriteByte('(')

	for i, branch := range a.branches {
		if i > 0 {
			sb.WriteByte('|')
		}

		describeAll(sb, branch)
	}

	if a.allowEmpty {
		sb.WriteByte('|')
	}

	sb.WriteByte(')')
}
