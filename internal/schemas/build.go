package schemas

import "encoding/json"

// EnumJSON marshals a value set into a JSON array suitable for splicing into
// an "enum" clause of a schema template. The evaluators use it to pin
// generated fields to known value sets the same way the extraction schemas
// pin categories: the model cannot invent a skill name or category that was
// not in its input.
func EnumJSON[T ~string](values []T) string {
	out, err := json.Marshal(values)
	if err != nil {
		// []string marshaling cannot fail
		panic(err)
	}
	return string(out)
}
