package texcomp

import (
	"math"
	"slices"
	"sort"
)

// Fields is a loose bag of settings values keyed by the C field names of the
// settings structs (for example "refineIterations" or "block_width"), as
// decoded from YAML or assembled by a command line.
//
// Scalars may be any Go integer type or an integral float64. Boolean scalars
// also accept integers (non-zero is true). Array fields take a slice of
// exactly the declared length.
type Fields map[string]any

type fieldSetter[S any] func(s *S, v any) error

// family is the declarative description of one settings record: its field
// table and its profile table. Every settings type is built through one.
type family[S any] struct {
	name     string
	fields   map[string]fieldSetter[S]
	profiles map[string]func(*S)
}

// build returns a record with the named profile applied first and fields
// applied over it. Presets that read the record (the ASTC block shape) see the
// requested fields.
func (f *family[S]) build(fields Fields, profile string) (S, error) {
	var s S
	if profile != "" {
		preset, ok := f.profiles[profile]
		if !ok {
			return s, invalidArgument("Invalid profile %q for %s", profile, f.name)
		}
		if err := f.apply(&s, fields); err != nil {
			var zero S
			return zero, err
		}
		preset(&s)
	}
	if err := f.apply(&s, fields); err != nil {
		var zero S
		return zero, err
	}
	return s, nil
}

func (f *family[S]) apply(s *S, fields Fields) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		set, ok := f.fields[k]
		if !ok {
			return invalidArgument("%s has no field %q", f.name, k)
		}
		if err := set(s, fields[k]); err != nil {
			return err
		}
	}
	return nil
}

func (f *family[S]) applyProfile(s *S, name string) error {
	preset, ok := f.profiles[name]
	if !ok {
		return invalidArgument("Invalid profile %q for %s", name, f.name)
	}
	preset(s)
	return nil
}

func (f *family[S]) profileNames() []string {
	names := make([]string, 0, len(f.profiles))
	for name := range f.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (f *family[S]) fieldNames() []string {
	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func int32Field[S any](name string, ref func(*S) *int32) fieldSetter[S] {
	return func(s *S, v any) error {
		n, ok := toInt32(v)
		if !ok {
			return invalidArgument("%s must be an integer, got %T", name, v)
		}
		*ref(s) = n
		return nil
	}
}

// flagInt32Field is an int32 C field exposed as a boolean: it takes either
// form and stores true as 1.
func flagInt32Field[S any](name string, ref func(*S) *int32) fieldSetter[S] {
	return func(s *S, v any) error {
		if b, ok := v.(bool); ok {
			*ref(s) = 0
			if b {
				*ref(s) = 1
			}
			return nil
		}
		n, ok := toInt32(v)
		if !ok {
			return invalidArgument("%s must be a boolean or an integer, got %T", name, v)
		}
		*ref(s) = n
		return nil
	}
}

func boolField[S any](name string, ref func(*S) *bool) fieldSetter[S] {
	return func(s *S, v any) error {
		if b, ok := v.(bool); ok {
			*ref(s) = b
			return nil
		}
		n, ok := toInt32(v)
		if !ok {
			return invalidArgument("%s must be a boolean, got %T", name, v)
		}
		*ref(s) = n != 0
		return nil
	}
}

func boolArrayField[S any](name string, ref func(*S) []bool) fieldSetter[S] {
	return func(s *S, v any) error {
		dst := ref(s)
		var items []any
		switch vv := v.(type) {
		case []bool:
			if len(vv) != len(dst) {
				return invalidArgument("%s must be a list of %d booleans", name, len(dst))
			}
			copy(dst, vv)
			return nil
		case []any:
			items = vv
		default:
			return invalidArgument("%s must be a list", name)
		}
		if len(items) != len(dst) {
			return invalidArgument("%s must be a list of %d booleans", name, len(dst))
		}
		vals := make([]bool, len(items))
		for i, item := range items {
			b, ok := item.(bool)
			if !ok {
				return invalidArgument("%s must be a list of %d booleans", name, len(dst))
			}
			vals[i] = b
		}
		copy(dst, vals)
		return nil
	}
}

func int32ArrayField[S any](name string, ref func(*S) []int32) fieldSetter[S] {
	return func(s *S, v any) error {
		dst := ref(s)
		var items []any
		switch vv := v.(type) {
		case []int32:
			if len(vv) != len(dst) {
				return invalidArgument("%s must be a list of %d integers", name, len(dst))
			}
			copy(dst, vv)
			return nil
		case []int:
			items = make([]any, len(vv))
			for i, n := range vv {
				items[i] = n
			}
		case []any:
			items = vv
		default:
			return invalidArgument("%s must be a list", name)
		}
		if len(items) != len(dst) {
			return invalidArgument("%s must be a list of %d integers", name, len(dst))
		}
		vals := make([]int32, len(items))
		for i, item := range items {
			n, ok := toInt32(item)
			if !ok {
				return invalidArgument("%s must be a list of %d integers", name, len(dst))
			}
			vals[i] = n
		}
		copy(dst, vals)
		return nil
	}
}

// toInt32 converts the integer kinds produced by decoders and literals.
func toInt32(v any) (int32, bool) {
	var n int64
	switch vv := v.(type) {
	case int:
		n = int64(vv)
	case int8:
		n = int64(vv)
	case int16:
		n = int64(vv)
	case int32:
		n = int64(vv)
	case int64:
		n = vv
	case uint:
		if uint64(vv) > math.MaxInt32 {
			return 0, false
		}
		n = int64(vv)
	case uint8:
		n = int64(vv)
	case uint16:
		n = int64(vv)
	case uint32:
		n = int64(vv)
	case uint64:
		if vv > math.MaxInt32 {
			return 0, false
		}
		n = int64(vv)
	case float64:
		if vv != math.Trunc(vv) || vv < math.MinInt32 || vv > math.MaxInt32 {
			return 0, false
		}
		n = int64(vv)
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}
