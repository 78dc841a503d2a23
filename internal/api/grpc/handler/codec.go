package handler

import (
	"encoding/json"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// maxExactInt is the largest integer a Struct number (a double) holds exactly.
const maxExactInt = 1 << 53

// decodeRequest copies the fields of req into dst using JSON field names.
// Numbers outside the exact integer range of a double are rejected.
func decodeRequest(req *structpb.Struct, dst any) error {
	if req == nil {
		req = &structpb.Struct{}
	}
	for name, v := range req.GetFields() {
		if err := checkNumber(name, v); err != nil {
			return err
		}
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// encodeResponse converts v into a Struct with the same JSON shape.
func encodeResponse(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to convert response: %w", err)
	}
	return out, nil
}

func checkNumber(name string, v *structpb.Value) error {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if n := kind.NumberValue; math.IsNaN(n) || math.Abs(n) > maxExactInt {
			return fmt.Errorf("invalid request: %s is outside the exact integer range", name)
		}
	case *structpb.Value_ListValue:
		for _, item := range kind.ListValue.GetValues() {
			if err := checkNumber(name, item); err != nil {
				return err
			}
		}
	case *structpb.Value_StructValue:
		for field, item := range kind.StructValue.GetFields() {
			if err := checkNumber(name+"."+field, item); err != nil {
				return err
			}
		}
	}
	return nil
}
