package trail

import (
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// Mode selects the trail problem.
type Mode int

const (
	Eulerian Mode = iota
	Hamiltonian
)

func (m Mode) String() string {
	if m == Hamiltonian {
		return "hamiltonian"
	}
	return "eulerian"
}

// ParseMode parses "eulerian" or "hamiltonian" (case-insensitive; "euler"
// and "hamilton" are accepted as well).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eulerian", "euler":
		return Eulerian, nil
	case "hamiltonian", "hamilton":
		return Hamiltonian, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want eulerian or hamiltonian)", s)
}

// Kind selects between an open trail and a closed one.
type Kind int

const (
	Path Kind = iota
	Circuit
)

func (k Kind) String() string {
	if k == Circuit {
		return "circuit"
	}
	return "path"
}

// ParseKind parses "path" or "circuit".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path":
		return Path, nil
	case "circuit", "cycle":
		return Circuit, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidMode, "unknown kind %q (want path or circuit)", s)
}
