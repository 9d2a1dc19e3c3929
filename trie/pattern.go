package trie

import (
	"fmt"
	"strings"
)

// Reserved bytes. Neither can be matched literally: a '*' in a request path
// walks into the wildcard edge and a ':' in a pattern always starts a slug.
const (
	Wildcard  byte = '*'
	SlugBegin byte = ':'
	Separator byte = '/'
)

// Pattern is a compiled route pattern.
type Pattern struct {
	// Path is the normalized pattern with every wildcard segment replaced
	// by a single Wildcard byte.
	Path string
	// Slugs holds one name per wildcard segment in Path, left to right.
	// Unnamed wildcards are "". Slugs is nil when Path has no wildcard.
	Slugs []string
}

// Compile rewrites every ":name" slug of raw into a Wildcard byte and
// collects the names. A slug name runs to the next Separator or the end of
// raw. A ':' is recognized anywhere, including in the middle of a segment,
// so "/a:b" compiles to "/a*" with slug "b".
func Compile(raw string) Pattern {
	var (
		path  strings.Builder
		slugs []string
	)

	path.Grow(len(raw))

	for i := 0; i < len(raw); {
		switch raw[i] {
		case SlugBegin:
			end := i + 1
			for end < len(raw) && raw[end] != Separator {
				end++
			}
			slugs = append(slugs, raw[i+1:end])
			path.WriteByte(Wildcard)
			i = end
		case Wildcard:
			slugs = append(slugs, "")
			path.WriteByte(Wildcard)
			i++
		default:
			path.WriteByte(raw[i])
			i++
		}
	}

	return Pattern{Path: path.String(), Slugs: slugs}
}

// Wildcards returns the number of wildcard segments in the pattern.
func (p Pattern) Wildcards() int {
	return strings.Count(p.Path, string(Wildcard))
}

func (p Pattern) validate() error {
	wildcards := p.Wildcards()
	if wildcards == 0 && p.Slugs != nil {
		return fmt.Errorf("%w: slug names without wildcard", ErrInvalidPattern)
	}
	if len(p.Slugs) != wildcards {
		return fmt.Errorf("%w: %d slug names for %d wildcards", ErrInvalidPattern, len(p.Slugs), wildcards)
	}
	return nil
}

// Template renders the pattern back in registration syntax: named wildcards
// as ":name", unnamed ones as "*".
func (p Pattern) Template() string {
	if len(p.Slugs) == 0 {
		return p.Path
	}

	var b strings.Builder
	slug := 0
	for i := 0; i < len(p.Path); i++ {
		if p.Path[i] != Wildcard {
			b.WriteByte(p.Path[i])
			continue
		}
		name := ""
		if slug < len(p.Slugs) {
			name = p.Slugs[slug]
		}
		slug++
		if name == "" {
			b.WriteByte(Wildcard)
			continue
		}
		b.WriteByte(SlugBegin)
		b.WriteString(name)
	}
	return b.String()
}

func (p Pattern) String() string {
	return p.Template()
}
