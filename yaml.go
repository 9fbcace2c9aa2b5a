package bigint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements the [yaml.Marshaler] interface.
// The integer is written as a plain scalar, so values that do not fit
// into int64 are still emitted without quotes.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (x BigInt) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: x.String(),
	}, nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Both plain and quoted scalars are accepted.
// Also see method [Parse].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (x *BigInt) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cannot unmarshal non-scalar node into %T: %w", value.Line, BigInt{}, errInvalidBigInt)
	}
	y, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*x = y
	return nil
}
