package deploy

import (
	"strings"
)

// MethodAny matches every HTTP method.
const MethodAny = "ANY"

// Matches reports whether API Gateway would send a request for method and
// path to this route. A `{name}` segment matches exactly one path segment
// and a trailing `{name+}` matches one or more. Neither matches an empty
// segment, which is why a greedy route alone never serves the root path.
func (r Route) Matches(method string, path string) bool {
	if !strings.EqualFold(r.Method, MethodAny) && !strings.EqualFold(r.Method, method) {
		return false
	}
	tmpl := splitPath(r.Path)
	segs := splitPath(path)
	for i, t := range tmpl {
		if isGreedy(t) {
			return i == len(tmpl)-1 && len(segs) > i
		}
		if i >= len(segs) {
			return false
		}
		if isVariable(t) {
			continue
		}
		if t != segs[i] {
			return false
		}
	}
	return len(segs) == len(tmpl)
}

// IsGreedy reports whether the route ends in a `{name+}` variable.
func (r Route) IsGreedy() bool {
	tmpl := splitPath(r.Path)
	return len(tmpl) > 0 && isGreedy(tmpl[len(tmpl)-1])
}

func (r Route) String() string {
	return strings.ToUpper(r.Method) + " " + r.Path
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isVariable(seg string) bool {
	return len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

func isGreedy(seg string) bool {
	return isVariable(seg) && strings.HasSuffix(seg, "+}")
}
