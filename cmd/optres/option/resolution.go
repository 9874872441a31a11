package option

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

type state int

const (
	unspecified state = iota
	specified
)

// value is the sealed payload of a resolved entry.
// Only intValue and stringValue implement it.
type value interface {
	isValue()
}

type intValue int
type stringValue string

func (intValue) isValue()    {}
func (stringValue) isValue() {}

// entry is one resolution slot. guide indexes the owning Guide; the guide
// itself is borrowed, never copied or mutated.
type entry struct {
	guide int
	state state
	value value
}

// Resolution combines a guide with one specification string and collects
// bids for the parameters the specification declares.
//
// The lifecycle is New → AddParam* → Finish → Lookup* → Close. Any failed
// AddParam or Finish poisons the resolution: its entries are released and
// the same error is returned by every later AddParam and Finish call.
// A Resolution is not safe for concurrent use.
type Resolution struct {
	guide   Guide
	spec    string
	entries []entry
	err     error
	closed  bool

	limit int
	log   *slog.Logger
	fold  cases.Caser
}

// Opt configures a Resolution.
type Opt func(*Resolution)

// WithLogger sets the logger used for bid and finish events.
func WithLogger(l *slog.Logger) Opt {
	return func(r *Resolution) {
		if l != nil {
			r.log = l
		}
	}
}

// WithStringLimit bounds string values, bid or default, to n bytes.
// Longer values fail with ErrOutOfMemory. n <= 0 disables the bound.
func WithStringLimit(n int) Opt {
	return func(r *Resolution) { r.limit = n }
}

// New allocates one entry for every guide parameter that has a section in
// spec, in guide order. Parameters absent from spec never take part.
func New(guide Guide, spec string, opts ...Opt) (*Resolution, error) {
	if err := guide.check(); err != nil {
		return nil, err
	}
	r := &Resolution{
		guide: guide.entries(),
		spec:  spec,
		log:   slog.New(slog.DiscardHandler),
		fold:  cases.Fold(),
	}
	for _, opt := range opts {
		opt(r)
	}

	count := 0
	for _, e := range r.guide {
		if r.applicable(e) {
			count++
		}
	}
	r.entries = make([]entry, 0, count)
	for i, e := range r.guide {
		if r.applicable(e) {
			r.entries = append(r.entries, entry{guide: i})
		}
	}
	r.log.Debug("resolution created", "spec", spec, "params", count)
	return r, nil
}

func (r *Resolution) applicable(e GuideEntry) bool {
	switch e.Kind {
	case KindInt, KindString, KindEnumBegin:
		_, ok := section(r.spec, e.Char)
		return ok
	}
	return false
}

// Specification returns the specification string the resolution was built from.
func (r *Resolution) Specification() string { return r.spec }

// Guide returns the guide the resolution was built from.
func (r *Resolution) Guide() Guide { return r.guide }

// Err returns the error that poisoned the resolution, if any.
func (r *Resolution) Err() error { return r.err }

// AddParam bids value for the parameter called name. Bids are write-once.
//
// Int values are parsed like C atoi (a non-numeric prefix reads as 0) and
// checked against the specification; enum values are matched by name
// without regard to case and their code is checked the same way; string
// values are copied verbatim.
func (r *Resolution) AddParam(name, value string) error {
	if err := r.usable(); err != nil {
		return err
	}

	idx := r.findByName(name)
	if idx < 0 {
		return r.poison(ErrParamNotFound, "name", name)
	}
	ent := &r.entries[idx]
	if ent.state == specified {
		return r.poison(ErrParamAlreadySpecified, "name", name)
	}
	ge := r.guide[ent.guide]

	switch ge.Kind {
	case KindInt:
		v, err := r.mustResolve(ge, atoi(value))
		if err != nil {
			return r.poison(err, "name", name, "value", value)
		}
		ent.value = intValue(v)

	case KindString:
		if r.limit > 0 && len(value) > r.limit {
			return r.poison(ErrOutOfMemory, "name", name, "limit", r.limit)
		}
		ent.value = stringValue(strings.Clone(value))

	case KindEnumBegin:
		code, ok := r.matchEnum(ent.guide, value)
		if !ok {
			return r.poison(ErrBadParam, "name", name, "value", value)
		}
		v, err := r.mustResolve(ge, code)
		if err != nil {
			return r.poison(err, "name", name, "value", value)
		}
		ent.value = intValue(v)

	default:
		return r.poison(ErrInternal, "name", name, "kind", ge.Kind)
	}

	ent.state = specified
	r.log.Debug("bid accepted", "name", name, "char", string(ge.Char), "value", value)
	return nil
}

// mustResolve checks v against the parameter's section. -1 after
// resolution means nothing constrained the parameter to a value.
func (r *Resolution) mustResolve(ge GuideEntry, v int) (int, error) {
	text, _ := section(r.spec, ge.Char)
	v, err := CheckValue(text, v)
	if err != nil {
		return -1, err
	}
	if v == -1 {
		return -1, ErrParamNotSpecified
	}
	return v, nil
}

func (r *Resolution) matchEnum(begin int, s string) (int, bool) {
	want := r.fold.String(s)
	for _, ev := range enumValuesAt(r.guide, begin) {
		if r.fold.String(ev.Name) == want {
			return ev.Value, true
		}
		if ev.DisplayName != "" && r.fold.String(ev.DisplayName) == want {
			return ev.Value, true
		}
	}
	return 0, false
}

// Finish resolves every parameter that was not bid to its declared default.
// String parameters without a literal default resolve to the empty string;
// int and enum parameters without a default fail with ErrParamNotSpecified.
// Calling Finish again is a no-op.
func (r *Resolution) Finish() error {
	if err := r.usable(); err != nil {
		return err
	}
	for i := range r.entries {
		ent := &r.entries[i]
		if ent.state == specified {
			continue
		}
		ge := r.guide[ent.guide]
		switch ge.Kind {
		case KindInt, KindEnumBegin:
			v, err := r.mustResolve(ge, -1)
			if err != nil {
				return r.poison(err, "name", ge.Name, "phase", "finish")
			}
			ent.value = intValue(v)
		case KindString:
			text, _ := section(r.spec, ge.Char)
			s, err := ReadStringLiteral(text, r.limit)
			if err != nil {
				return r.poison(err, "name", ge.Name, "phase", "finish")
			}
			ent.value = stringValue(s)
		default:
			return r.poison(ErrInternal, "name", ge.Name, "kind", ge.Kind)
		}
		ent.state = specified
	}
	r.log.Debug("resolution finished", "params", len(r.entries))
	return nil
}

// LookupInt returns the resolved integer keyed by c, or -1 if there is none.
func (r *Resolution) LookupInt(c byte) int {
	ent := r.findByChar(c)
	if ent == nil || ent.state != specified {
		return -1
	}
	if v, ok := ent.value.(intValue); ok {
		return int(v)
	}
	return -1
}

// LookupString returns the resolved string keyed by c. The second result is
// false if there is none.
func (r *Resolution) LookupString(c byte) (string, bool) {
	ent := r.findByChar(c)
	if ent == nil || ent.state != specified {
		return "", false
	}
	if v, ok := ent.value.(stringValue); ok {
		return string(v), true
	}
	return "", false
}

// Close releases the entry table. It is safe to call more than once.
func (r *Resolution) Close() error {
	if !r.closed {
		r.closed = true
		r.entries = nil
	}
	return nil
}

func (r *Resolution) usable() error {
	if r.err != nil {
		return r.err
	}
	if r.closed {
		return ErrInternal
	}
	return nil
}

// poison records err, drops every entry and returns err unchanged.
func (r *Resolution) poison(err error, args ...any) error {
	r.err = err
	r.entries = nil
	r.log.Debug("resolution aborted", append([]any{"err", err}, args...)...)
	return err
}

func (r *Resolution) findByName(name string) int {
	for i, ent := range r.entries {
		if r.guide[ent.guide].Name == name {
			return i
		}
	}
	return -1
}

func (r *Resolution) findByChar(c byte) *entry {
	for i, ent := range r.entries {
		if r.guide[ent.guide].Char == c {
			return &r.entries[i]
		}
	}
	return nil
}

// atoi mirrors C atoi: optional leading spaces and sign, then the longest
// run of digits. Text with no digits reads as 0.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		if n > maxValue {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
