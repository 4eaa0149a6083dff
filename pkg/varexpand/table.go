package varexpand

// Entry is one variable. Key 0 means the entry has no short key and an
// empty LongKey means it has no long key.
type Entry struct {
	Key     byte
	LongKey string
	Value   string
}

// Table is an ordered variable list. Lookups return the first match.
type Table []Entry

// Lookup finds the value of short key c.
func (t Table) Lookup(c byte) (string, bool) {
	if c == 0 {
		return "", false
	}
	for _, e := range t {
		if e.Key == c {
			return e.Value, true
		}
	}
	return "", false
}

// LookupLong finds the value of long key name.
func (t Table) LookupLong(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, e := range t {
		if e.LongKey == name {
			return e.Value, true
		}
	}
	return "", false
}

// Func computes the value of %{name:data}. fctx is the opaque value passed
// to the expansion call. A StatusOK result substitutes value; StatusUnsupported
// substitutes nothing and degrades the expansion; StatusFatal substitutes
// nothing and err becomes the expansion error.
type Func func(data string, fctx any) (value string, status Status, err error)

// Funcs maps function names to implementations.
type Funcs map[string]Func
