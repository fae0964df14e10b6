package layout

import "slices"

// without returns a copy of ids with id removed.
func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// insertAt returns a copy of ids with id inserted at i, clamped to [0, len].
func insertAt(ids []string, i int, id string) []string {
	i = clampIndex(i, len(ids))
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)
	return append(out, ids[i:]...)
}

// swap returns a copy of ids with positions i and j exchanged.
func swap(ids []string, i, j int) []string {
	out := slices.Clone(ids)
	out[i], out[j] = out[j], out[i]
	return out
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n)
}
