package fts

import (
	"errors"
	"fmt"
	"sort"
)

// Language identifies the language of the tokens being filtered.
type Language struct {
	Name string
}

// Filter transforms one token at a time.
type Filter interface {
	// Filter returns the filtered token, or keep == false when the token
	// is dropped.
	Filter(token string) (out string, keep bool, err error)
	Close() error
}

// Class creates filters of one kind.
type Class struct {
	Name string
	// Supports reports whether the class can filter lang.
	Supports func(lang *Language) bool
	// New creates the filter itself; the chain wrapping is done by Create.
	New func(lang *Language, settings map[string]string) (Filter, error)
}

// ErrUnknownFilter is returned by Create for an unregistered class name.
var ErrUnknownFilter = errors.New("unknown filter")

var classes = map[string]*Class{
	NormalizerName: normalizerClass,
	StopwordsName:  stopwordsClass,
}

// Lookup returns the named class.
func Lookup(name string) (*Class, bool) {
	c, ok := classes[name]
	return c, ok
}

// Names lists the registered classes.
func Names() []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds a filter of the named class on top of parent, which may be
// nil.
func Create(name string, parent Filter, lang *Language, settings map[string]string) (Filter, error) {
	c, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	return c.Create(parent, lang, settings)
}

// Create builds a filter of class c on top of parent.
func (c *Class) Create(parent Filter, lang *Language, settings map[string]string) (Filter, error) {
	if c.Supports != nil && !c.Supports(lang) {
		return nil, fmt.Errorf("%s: language not supported", c.Name)
	}
	f, err := c.New(lang, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	if parent == nil {
		return f, nil
	}
	return &chained{parent: parent, self: f}, nil
}

type chained struct {
	parent Filter
	self   Filter
}

func (c *chained) Filter(token string) (string, bool, error) {
	token, keep, err := c.parent.Filter(token)
	if err != nil || !keep {
		return "", false, err
	}
	return c.self.Filter(token)
}

// Close closes this filter only; the parent is owned by the caller.
func (c *chained) Close() error {
	return c.self.Close()
}
