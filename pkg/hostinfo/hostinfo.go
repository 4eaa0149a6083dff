// Package hostinfo provides the process and host identity values that
// templates can reference: hostname, pid, uid, gid and environment
// variables.
package hostinfo

import (
	"os"
	"strconv"
	"sync"
)

// Host answers identity questions about the running process.
// Implementations must be safe for concurrent use.
type Host interface {
	Hostname() string
	PID() string
	UID() string
	GID() string
	// LookupEnv returns the value of the named environment variable and
	// whether it was set.
	LookupEnv(name string) (string, bool)
}

type system struct {
	once     sync.Once
	hostname string
	pid      string
}

var defaultSystem = &system{}

// System returns the Host backed by the operating system. Hostname and pid
// are read once and cached for the lifetime of the process.
func System() Host {
	return defaultSystem
}

func (s *system) load() {
	s.once.Do(func() {
		name, err := os.Hostname()
		if err != nil {
			name = "localhost"
		}
		s.hostname = name
		s.pid = strconv.Itoa(os.Getpid())
	})
}

func (s *system) Hostname() string {
	s.load()
	return s.hostname
}

func (s *system) PID() string {
	s.load()
	return s.pid
}

func (s *system) UID() string { return strconv.Itoa(os.Geteuid()) }

func (s *system) GID() string { return strconv.Itoa(os.Getegid()) }

func (s *system) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Static is a fixed Host, mostly useful in tests.
type Static struct {
	Name string
	Pid  string
	Uid  string
	Gid  string
	Env  map[string]string
}

// Hostname returns s.Name.
func (s *Static) Hostname() string { return s.Name }

// PID returns s.Pid.
func (s *Static) PID() string { return s.Pid }

// UID returns s.Uid.
func (s *Static) UID() string { return s.Uid }

// GID returns s.Gid.
func (s *Static) GID() string { return s.Gid }

// LookupEnv looks name up in s.Env.
func (s *Static) LookupEnv(name string) (string, bool) {
	v, ok := s.Env[name]
	return v, ok
}
