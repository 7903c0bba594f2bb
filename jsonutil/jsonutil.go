// Package jsonutil round-trips plain records through JSON text.
package jsonutil

import "encoding/json"

// ToJSON serializes v to JSON text.
func ToJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// FromJSON decodes JSON text into a value of the target type, so decoded
// fields land directly on a typed record with its methods available.
// Malformed input surfaces the encoding/json error unmodified.
func FromJSON[T any](data string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(data), &v)

	return v, err
}
