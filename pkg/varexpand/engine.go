package varexpand

import (
	"log/slog"
	"strings"

	"github.com/getmockd/varexpand/pkg/hashmethod"
	"github.com/getmockd/varexpand/pkg/hostinfo"
	"github.com/getmockd/varexpand/pkg/logging"
)

// Defaults for Config fields left zero.
const (
	DefaultMaxDepth  = 16
	DefaultMaxRounds = 1_000_000
)

// unsupportedPrefix starts the text substituted for unknown keys.
const unsupportedPrefix = "UNSUPPORTED_VARIABLE_"

// Config holds engine settings. The zero value is usable.
type Config struct {
	// MaxDepth bounds nested expansion of salts, function data and hash
	// fields. Defaults to DefaultMaxDepth.
	MaxDepth int

	// MaxRounds bounds the rounds hash option. Defaults to DefaultMaxRounds.
	MaxRounds int

	// Host answers %{hostname}, %{pid}, %{uid}, %{gid} and %{env:...}.
	// Defaults to hostinfo.System().
	Host hostinfo.Host

	// Hashes lists the algorithms usable in %{algo:field}. Defaults to
	// hashmethod.Default().
	Hashes *hashmethod.Registry

	// Logger receives a debug record for every directive that is not
	// StatusOK. Defaults to logging.Nop().
	Logger *slog.Logger
}

// Engine expands templates. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	maxDepth  int
	maxRounds int
	host      hostinfo.Host
	hashes    *hashmethod.Registry
	logger    *slog.Logger
}

// New creates an Engine, filling in defaults for zero fields of cfg.
func New(cfg Config) *Engine {
	e := &Engine{
		maxDepth:  cfg.MaxDepth,
		maxRounds: cfg.MaxRounds,
		host:      cfg.Host,
		hashes:    cfg.Hashes,
		logger:    cfg.Logger,
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxDepth
	}
	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxRounds
	}
	if e.host == nil {
		e.host = hostinfo.System()
	}
	if e.hashes == nil {
		e.hashes = hashmethod.Default()
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	return e
}

var std = New(Config{})

// Expand expands tmpl against table with the default engine.
func Expand(dst *strings.Builder, tmpl string, table Table) (Status, error) {
	return std.Expand(dst, tmpl, table, nil, nil)
}

// ExpandWithFuncs expands tmpl against table and funcs with the default
// engine. fctx is passed to every function call.
func ExpandWithFuncs(dst *strings.Builder, tmpl string, table Table, funcs Funcs, fctx any) (Status, error) {
	return std.Expand(dst, tmpl, table, funcs, fctx)
}

// ExpandString is ExpandWithFuncs returning the output as a string.
func ExpandString(tmpl string, table Table, funcs Funcs, fctx any) (string, Status, error) {
	return std.ExpandString(tmpl, table, funcs, fctx)
}

// Expand appends the expansion of tmpl to dst. The whole template is always
// expanded; the result is the most severe directive status, and the error
// of the last fatal directive when that status is StatusFatal.
func (e *Engine) Expand(dst *strings.Builder, tmpl string, table Table, funcs Funcs, fctx any) (Status, error) {
	x := &expansion{e: e, table: table, funcs: funcs, fctx: fctx}
	st, err := x.run(dst, tmpl)
	if st != StatusFatal {
		err = nil
	}
	return st, err
}

// ExpandString is Expand into a fresh string.
func (e *Engine) ExpandString(tmpl string, table Table, funcs Funcs, fctx any) (string, Status, error) {
	var b strings.Builder
	st, err := e.Expand(&b, tmpl, table, funcs, fctx)
	return b.String(), st, err
}

// expansion is the state of one Expand call.
type expansion struct {
	e     *Engine
	table Table
	funcs Funcs
	fctx  any
	depth int
}

// run expands tmpl into dst. The error is that of the last directive with
// the returned status, so a degraded nested expansion can report why.
func (x *expansion) run(dst *strings.Builder, tmpl string) (Status, error) {
	status := StatusOK
	var fatal, degraded error

	for i := 0; i < len(tmpl); {
		j := strings.IndexByte(tmpl[i:], '%')
		if j < 0 {
			dst.WriteString(tmpl[i:])
			break
		}
		dst.WriteString(tmpl[i : i+j])

		pos := i + j
		d, n, err := parseDirective(tmpl[pos+1:])
		end := pos + 1 + n

		st := StatusFatal
		if err == nil {
			var text string
			text, st, err = x.evaluate(&d)
			dst.WriteString(text)
		}

		if st != StatusOK {
			// Nested failures are located by the outermost directive only.
			if err != nil && x.depth == 0 {
				err = &DirectiveError{Pos: pos, Directive: tmpl[pos:end], Err: err}
			}
			x.e.logger.Debug("directive not expanded",
				"directive", tmpl[pos:end], "pos", pos, "depth", x.depth,
				"status", st.String(), "error", err)
			if st == StatusFatal {
				fatal = err
			} else {
				degraded = err
			}
		}
		status = status.Worse(st)
		i = end
	}

	switch status {
	case StatusFatal:
		return status, fatal
	case StatusUnsupported:
		return status, degraded
	}
	return status, nil
}

func (x *expansion) evaluate(d *directive) (string, Status, error) {
	var (
		value string
		st    Status
		err   error
	)
	if d.long {
		value, st, err = x.resolveLong(d.key)
	} else {
		value, st, err = x.resolveShort(d.short)
	}
	if st == StatusFatal {
		return "", st, err
	}
	return d.apply(value), st, err
}

func (x *expansion) resolveShort(c byte) (string, Status, error) {
	if v, ok := x.table.Lookup(c); ok {
		return v, StatusOK, nil
	}
	if c == '%' {
		return "%", StatusOK, nil
	}
	return unsupportedPrefix + string(c), StatusUnsupported,
		wrapf(ErrUnknownVariable, nil, "'%c'", c)
}

// resolveLong resolves the content of %{...}: table, built-ins, env,
// functions, hash algorithms, in that order.
func (x *expansion) resolveLong(key string) (string, Status, error) {
	if v, ok := x.table.LookupLong(key); ok {
		return v, StatusOK, nil
	}

	switch key {
	case "hostname":
		return x.e.host.Hostname(), StatusOK, nil
	case "pid":
		return x.e.host.PID(), StatusOK, nil
	case "uid":
		return x.e.host.UID(), StatusOK, nil
	case "gid":
		return x.e.host.GID(), StatusOK, nil
	}

	name, data, _ := cutTop(key, ':')
	if name == "env" {
		v, _ := x.e.host.LookupEnv(data)
		return v, StatusOK, nil
	}
	if fn, ok := x.funcs[name]; ok && fn != nil {
		return x.call(name, fn, data)
	}

	algo, opts, isHash := cutTop(name, ';')
	if m, ok := x.lookupHash(algo); ok {
		return x.hash(m, algo, opts, data)
	}
	if isHash {
		return unsupportedPrefix + name, StatusUnsupported,
			wrapf(ErrUnknownAlgorithm, nil, "'%s'", algo)
	}
	return unsupportedPrefix + name, StatusUnsupported,
		wrapf(ErrUnknownVariable, nil, "'%s'", name)
}

// call invokes fn, first expanding data when it holds directives.
func (x *expansion) call(name string, fn Func, data string) (string, Status, error) {
	status := StatusOK
	var dataErr error
	if strings.IndexByte(data, '%') >= 0 {
		expanded, st, err := x.nested(data)
		if st == StatusFatal {
			return "", st, err
		}
		status, dataErr = st, err
		data = expanded
	}

	v, st, err := fn(data, x.fctx)
	switch st.normalize() {
	case StatusOK:
		return v, status, dataErr
	case StatusUnsupported:
		return "", StatusUnsupported, wrapf(ErrFuncDeclined, err, "%s", name)
	default:
		return "", StatusFatal, wrapf(ErrFuncFailed, err, "%s", name)
	}
}

// deeper returns a copy of x one nesting level down.
func (x *expansion) deeper() (*expansion, error) {
	if x.depth >= x.e.maxDepth {
		return nil, wrapf(ErrMaxDepth, nil, "limit is %d", x.e.maxDepth)
	}
	inner := *x
	inner.depth++
	return &inner, nil
}

// nested expands s as a template one level down.
func (x *expansion) nested(s string) (string, Status, error) {
	inner, err := x.deeper()
	if err != nil {
		return "", StatusFatal, err
	}
	var b strings.Builder
	st, err := inner.run(&b, s)
	return b.String(), st, err
}
