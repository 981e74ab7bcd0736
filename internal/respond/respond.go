// Package respond normalizes client return values into the plain
// JSON-shaped values that MCP tool results carry. It flattens typed API
// structs through their Dump method, maps null-collection errors to empty
// collections, and guards client calls against panics.
package respond

import (
	"errors"
	"fmt"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

// Dumper is implemented by typed API responses that can flatten themselves
// into a plain map.
type Dumper interface {
	Dump() map[string]any
}

// Normalize converts a client return value into a JSON-friendly value.
// Typed responses are flattened through Dump, slices element-wise; plain
// maps, slices and scalars pass through unchanged. Nil becomes an empty map
// so tool results always carry an object or a list.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return map[string]any{}
	case Dumper:
		return val.Dump()
	case []map[string]any:
		if val == nil {
			return []map[string]any{}
		}
		return val
	case []string:
		if val == nil {
			return []string{}
		}
		return val
	case map[string]any:
		if val == nil {
			return map[string]any{}
		}
		return val
	default:
		return normalizeSlice(v)
	}
}

// normalizeSlice flattens slices of Dumper implementations. Anything else
// passes through as-is.
func normalizeSlice(v any) any {
	switch items := v.(type) {
	case []xplainable.ModelSummary:
		return dumpAll(items)
	case []xplainable.ModelVersion:
		return dumpAll(items)
	case []xplainable.Partition:
		return dumpAll(items)
	case []xplainable.Deployment:
		return dumpAll(items)
	case []xplainable.Preprocessor:
		return dumpAll(items)
	case []xplainable.Collection:
		return dumpAll(items)
	case []xplainable.Dataset:
		return dumpAll(items)
	default:
		return v
	}
}

func dumpAll[T Dumper](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.Dump())
	}
	return out
}

// DumpList flattens a list response into plain maps. A nil list is logged
// as a warning and yields an empty slice, never nil, so tool results
// serialize as [] rather than null.
func DumpList[T Dumper](items []T, tool string, logger *common.Logger) []map[string]any {
	if items == nil {
		logger.Warn().Str("tool", tool).Msg("Null collection response normalized to empty list")
		return []map[string]any{}
	}
	return dumpAll(items)
}

// SafeCall invokes fn, recovering from panics and mapping null-collection
// errors to an empty list. All other errors pass through to the caller.
func SafeCall(tool string, logger *common.Logger, fn func() (any, error)) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("tool", tool).Str("panic", fmt.Sprint(r)).Msg("Tool call panicked")
			result = nil
			err = fmt.Errorf("%s: internal error: %v", tool, r)
		}
	}()

	result, err = fn()
	if err != nil {
		if errors.Is(err, xplainable.ErrNullResponse) {
			return DumpList[Dumper](nil, tool, logger), nil
		}
		return nil, err
	}
	return result, nil
}
