package itksn

import (
	"fmt"
	"strings"

	"github.com/reoring/itksn/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Pointer() string
	Issue(code string, offset int, kv ...any) Issue
}

// Root returns the path of the top-level record.
func Root() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue builds an Issue at this path. kv are key/value pairs stored in
// Params; a "hint" key is lifted into Issue.Hint.
func (p *pathRef) Issue(code string, offset int, kv ...any) Issue {
	m := map[string]any{}
	data := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		m[k] = kv[i+1]
		data[k] = fmt.Sprint(kv[i+1])
	}
	it := Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Offset: int64(offset), Params: m}
	if h, ok := m["hint"]; ok {
		it.Hint = fmt.Sprint(h)
		delete(m, "hint")
	}
	return it
}
