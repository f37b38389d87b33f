package operation

import "sort"

// sortedKeys is the fallback used when no document-order hint was supplied
// for a section (e.g. a document built in-memory by a test rather than
// decoded from raw bytes via the jsonorder helper). It trades true
// insertion-order fidelity for at least run-to-run determinism.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
