package agent

import "reflect"

// Merge resolves effective configuration for a handler. For every key present
// in defaults the override value wins only when it is defined and truthy;
// otherwise the default is kept. Keys present only in the override pass
// through unchanged. The merge is shallow: a truthy override object replaces
// the whole default value, nothing is merged recursively.
//
// Falsy means nil, empty string, false, numeric zero, or an empty
// slice/map. Discarding empty overrides is the documented contract of the
// legacy agents and is pinned by tests; callers that want to clear a default
// must omit the key and handle absence themselves.
func Merge(defaults, override map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(override))
	for key, def := range defaults {
		merged[key] = def
		if val, ok := override[key]; ok && !isFalsy(val) {
			merged[key] = val
		}
	}
	for key, val := range override {
		if _, known := defaults[key]; !known {
			merged[key] = val
		}
	}
	return merged
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
