package vgnav

import (
	"errors"
	"path"
	"strings"
)

// ErrMissingParam is returned by BuildPath when a pattern parameter has no value.
var ErrMissingParam = errors.New("missing param")

// MatchParams reports whether p matches pattern, where pattern segments
// starting with ":" match any single segment, e.g. "/projects/:id/phases".
// Both are cleaned before matching.  The Router never does this itself,
// it is for views that need the parameters out of the current path.
func MatchParams(pattern, p string) (PathParamList, bool) {
	mp := parseMpath(pattern)
	params, exact, ok := mp.match(p)
	if !ok || !exact {
		return nil, false
	}
	return params, true
}

// MatchParamsPrefix is like MatchParams but also matches when p continues
// past the end of pattern, e.g. pattern "/projects/:id" and p "/projects/7/phases".
func MatchParamsPrefix(pattern, p string) (PathParamList, bool) {
	mp := parseMpath(pattern)
	params, _, ok := mp.match(p)
	if !ok {
		return nil, false
	}
	return params, true
}

// BuildPath fills the ":" parameters of pattern from params.  A missing value
// causes ErrMissingParam but the path is still returned with "_" in its place.
func BuildPath(pattern string, params PathParamList) (string, error) {
	return parseMpath(pattern).merge(params)
}

// ParamNames returns the names of the parameters in pattern
// without the preceding colon, i.e. "/somewhere/:p1/:p2" gives []string{"p1","p2"}.
func ParamNames(pattern string) []string {
	return parseMpath(pattern).paramNames()
}

// parseMpath will split p into appropriate parts for an mpath.
// After parsing each element of mpath will either be a static
// string or a parameter starting with ":".
func parseMpath(p string) mpath {
	ret := make(mpath, 0, 2)
	p = path.Clean("/" + p)

	lastWasSlash := false
	inParam := false
	startIdx := 0

	for i := range p {

		c := p[i]

		if c == '/' {
			if inParam {
				ret = append(ret, p[startIdx:i])
				inParam = false
				startIdx = i
			}
			lastWasSlash = true
			continue
		}

		if lastWasSlash && c == ':' {
			if startIdx < i {
				ret = append(ret, p[startIdx:i])
			}
			inParam = true
			startIdx = i
		}
		lastWasSlash = false
	}

	// append last part if needed
	if startIdx < len(p) {
		ret = append(ret, p[startIdx:])
	}

	return ret
}

// mpath is a matchable-path.  It's basically just a path split by parameter values.
type mpath []string

func (mp mpath) paramNames() []string {
	var ret []string
	for _, p := range mp {
		if strings.HasPrefix(p, ":") {
			ret = append(ret, p[1:])
		}
	}
	return ret
}

// String returns the re-assembled path pattern
func (mp mpath) String() string {
	return strings.Join(mp, "")
}

func (mp mpath) merge(params PathParamList) (string, error) {

	var reterr error
	var sb strings.Builder
	sb.Grow(64)

	for _, p := range mp {
		if !strings.HasPrefix(p, ":") {
			sb.WriteString(p)
			continue
		}
		v, ok := params.lookup(p[1:])
		if !ok { // an empty value is fine, only a missing one is an error
			reterr = ErrMissingParam
			sb.WriteString("_")
			continue
		}
		sb.WriteString(v)
	}

	return sb.String(), reterr
}

// match compares our mpath to the path provided and returns the parameter
// values plus ok true if match.  If !exact it means the path matched but there is more after.
func (mp mpath) match(p string) (params PathParamList, exact, ok bool) {

	prest := path.Clean("/" + p)

	readParam := func(pin string) (pr, pv string) {
		for i := range pin {
			if pin[i] == '/' {
				return pin[i:], pin[:i]
			}
		}
		// no slash means the entire input is the param value
		return "", pin
	}

	for i, mpart := range mp {

		if strings.HasPrefix(mpart, ":") {
			var pval string
			prest, pval = readParam(prest)
			if pval == "" {
				return nil, false, false
			}
			params = append(params, PathParam{Key: mpart[1:], Value: pval})
			continue
		}

		if !strings.HasPrefix(prest, mpart) {
			return nil, false, false
		}
		prest = prest[len(mpart):]

		// a static part must end on a segment boundary unless a param follows
		last := i == len(mp)-1
		if last && prest != "" && prest[0] != '/' && mpart != "/" {
			return nil, false, false
		}
	}

	return params, prest == "", true
}
