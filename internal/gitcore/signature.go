package gitcore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Signature identifies an author or committer: a name, an email, and the
// instant the commit was made.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Line renders the signature in the exact wire form this engine writes:
// "Name <email> unix-seconds +0000". Identity is never anything but UTC,
// so the timezone literal is always "+0000".
func (s Signature) Line() string {
	return fmt.Sprintf("%s <%s> %d +0000", s.Name, s.Email, s.When.Unix())
}

var signatureBrackets = regexp.MustCompile("[<>]")

// ParseSignature parses a commit author/committer line. It first tries the
// strict, bracket-delimited form "Name <email> unix-seconds tz" that this
// engine always writes; for input that doesn't bracket an email it falls
// back to the documented loose parser (split on single spaces, treat the
// penultimate field as the Unix timestamp, discard the final timezone
// field). That fallback has a known limitation, preserved intentionally:
// an identity string containing the literal sequence " <digits> +0000" at
// its end would be misparsed.
func ParseSignature(line string) (Signature, error) {
	if sig, err := parseStrictSignature(line); err == nil {
		return sig, nil
	}
	return parseLooseSignature(line)
}

func parseStrictSignature(line string) (Signature, error) {
	parts := signatureBrackets.Split(line, -1)
	if len(parts) != 3 {
		return Signature{}, fmt.Errorf("not a bracketed signature: %q", line)
	}

	name := strings.TrimSpace(parts[0])
	email := strings.TrimSpace(parts[1])

	fields := strings.Fields(strings.TrimSpace(parts[2]))
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("missing timestamp: %q", line)
	}

	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid timestamp: %q", line)
	}

	return Signature{Name: name, Email: email, When: time.Unix(ts, 0).UTC()}, nil
}

func parseLooseSignature(line string) (Signature, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Signature{}, fmt.Errorf("invalid signature line: %q", line)
	}

	tsField := fields[len(fields)-2]
	ts, err := strconv.ParseInt(tsField, 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature timestamp: %q", line)
	}

	identity := strings.Join(fields[:len(fields)-2], " ")
	return Signature{Name: identity, When: time.Unix(ts, 0).UTC()}, nil
}

// parseIdentity splits a free-form "Name <email>" identity string (as
// accepted from --author or PYGIT_AUTHOR) into its name and email parts.
func parseIdentity(identity string) (name, email string) {
	open := strings.Index(identity, "<")
	if open < 0 {
		return strings.TrimSpace(identity), ""
	}
	close := strings.Index(identity[open:], ">")
	if close < 0 {
		return strings.TrimSpace(identity), ""
	}
	name = strings.TrimSpace(identity[:open])
	email = identity[open+1 : open+close]
	return name, email
}
