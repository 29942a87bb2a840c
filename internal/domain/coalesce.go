package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Float64Ptr returns a pointer to a copy of v.
func Float64Ptr(v float64) *float64 { return &v }

// StrFromPtr returns *p, or "" when p is nil.
func StrFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
