package cli

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/getmockd/varexpand/internal/id"
	"github.com/getmockd/varexpand/pkg/varexpand"
)

// maxRandomLen bounds %{random:N}.
const maxRandomLen = 1024

// builtinFuncs are the %{name:data} functions available on the command
// line.
func builtinFuncs() varexpand.Funcs {
	return varexpand.Funcs{
		// uuid and ulid ignore their data.
		"uuid": func(string, any) (string, varexpand.Status, error) {
			return uuid.NewString(), varexpand.StatusOK, nil
		},
		"ulid": func(string, any) (string, varexpand.Status, error) {
			return id.ULID(), varexpand.StatusOK, nil
		},
		"random": funcRandom,
		"expr":   funcExpr,
		"upper": func(data string, _ any) (string, varexpand.Status, error) {
			return cases.Upper(language.Und).String(data), varexpand.StatusOK, nil
		},
		"lower": func(data string, _ any) (string, varexpand.Status, error) {
			return cases.Lower(language.Und).String(data), varexpand.StatusOK, nil
		},
	}
}

// funcRandom returns N random letters and digits, 16 when data is empty.
func funcRandom(data string, _ any) (string, varexpand.Status, error) {
	n := 16
	if data != "" {
		v, err := strconv.Atoi(data)
		if err != nil || v < 1 || v > maxRandomLen {
			return "", varexpand.StatusFatal, fmt.Errorf("random: length must be 1..%d, got %q", maxRandomLen, data)
		}
		n = v
	}
	return id.Alphanumeric(n), varexpand.StatusOK, nil
}

// exprEnv exposes the long variables of table to %{expr:...}. The first
// entry for a name wins, as in expansion.
func exprEnv(table varexpand.Table) map[string]any {
	env := make(map[string]any, len(table))
	for _, e := range table {
		if e.LongKey == "" {
			continue
		}
		if _, ok := env[e.LongKey]; !ok {
			env[e.LongKey] = e.Value
		}
	}
	return env
}

// funcExpr evaluates data as an expr-lang expression over the map[string]any
// passed as the function context.
func funcExpr(data string, fctx any) (string, varexpand.Status, error) {
	env, _ := fctx.(map[string]any)
	if env == nil {
		env = map[string]any{}
	}

	program, err := expr.Compile(data, expr.Env(env))
	if err != nil {
		return "", varexpand.StatusFatal, fmt.Errorf("compile %q: %w", data, err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return "", varexpand.StatusFatal, fmt.Errorf("eval %q: %w", data, err)
	}
	if result == nil {
		return "", varexpand.StatusOK, nil
	}
	return fmt.Sprint(result), varexpand.StatusOK, nil
}
