package jsontree

import "github.com/maksimkurb/keen-console/src/internal/jsonvalue"

// Synthesize returns a value shaped like sample with every leaf reset to the
// zero value of its type: "" for strings, 0 for numbers, false for booleans.
// Null stays null. Objects keep all their members and arrays keep all their
// elements, each zeroed the same way.
func Synthesize(sample jsonvalue.Value) jsonvalue.Value {
	switch sample.Kind() {
	case jsonvalue.String:
		return jsonvalue.StringValue("")
	case jsonvalue.Number:
		return jsonvalue.IntValue(0)
	case jsonvalue.Bool:
		return jsonvalue.BoolValue(false)
	case jsonvalue.Array:
		items := sample.Items()
		for i := range items {
			items[i] = Synthesize(items[i])
		}
		return jsonvalue.ArrayValue(items...)
	case jsonvalue.Object:
		members := sample.Members()
		for i := range members {
			members[i].Value = Synthesize(members[i].Value)
		}
		return jsonvalue.ObjectValue(members...)
	}
	return jsonvalue.NullValue()
}

// DefaultItem returns the template for a new element of arr: the first
// element synthesized, or an empty string when arr has no elements.
//
// An empty array gives no shape to infer from, so a new item added to it is
// always a string even if the array is meant to hold numbers or objects.
func DefaultItem(arr jsonvalue.Value) jsonvalue.Value {
	first, ok := arr.Index(0)
	if !ok {
		return jsonvalue.StringValue("")
	}
	return Synthesize(first)
}
