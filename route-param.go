package vgnav

import "net/url"

// PathParam is a parameter key/value pair extracted from a URL path by MatchParams.
type PathParam struct {
	Key   string
	Value string
}

// PathParamList is a slice of PathParam.
type PathParamList []PathParam

// ByName returns the named parameter value or an empty string if not found.
func (ps PathParamList) ByName(name string) string {
	for i := range ps {
		if ps[i].Key == name {
			return ps[i].Value
		}
	}
	return ""
}

// Values returns the parameters as url.Values.
func (ps PathParamList) Values() url.Values {
	ret := make(url.Values, len(ps))
	for _, p := range ps {
		ret.Add(p.Key, p.Value)
	}
	return ret
}

func (ps PathParamList) lookup(name string) (string, bool) {
	for i := range ps {
		if ps[i].Key == name {
			return ps[i].Value, true
		}
	}
	return "", false
}
