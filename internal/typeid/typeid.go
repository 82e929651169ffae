package typeid

import "go.jetify.com/typeid/v2"

const (
	PrefixSession = "sess"
	PrefixBuild   = "build"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewSessionID() string { return New(PrefixSession) }
func NewBuildID() string   { return New(PrefixBuild) }
