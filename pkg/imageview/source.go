// Package imageview displays a remote or local image inside a bubbletea
// program, tracking its load lifecycle and sizing it to the live window.
package imageview

import "strings"

// Kind distinguishes where an image comes from.
type Kind int

const (
	KindNone Kind = iota
	KindRemote
	KindLocal
)

// Source describes the image to show. The zero value is the nil source.
type Source struct {
	kind Kind
	ref  string
}

// None is the nil source; it renders the unavailable placeholder.
var None = Source{}

// Remote references an image by URI.
func Remote(uri string) Source {
	return Source{kind: KindRemote, ref: uri}
}

// Local references a bundled asset by file path.
func Local(path string) Source {
	return Source{kind: KindLocal, ref: path}
}

// Kind returns the source kind.
func (s Source) Kind() Kind {
	return s.kind
}

// Ref returns the URI or path.
func (s Source) Ref() string {
	return s.ref
}

// Resolvable reports whether a load can be attempted at all.
func (s Source) Resolvable() bool {
	return s.kind != KindNone && strings.TrimSpace(s.ref) != ""
}

// Key is the source identity. Two sources with the same key are the same
// image request; unresolvable sources have an empty key.
func (s Source) Key() string {
	if !s.Resolvable() {
		return ""
	}
	switch s.kind {
	case KindRemote:
		return "remote:" + s.ref
	default:
		return "local:" + s.ref
	}
}

func (s Source) String() string {
	if !s.Resolvable() {
		return "<none>"
	}
	return s.ref
}
