package response

import (
	"reflect"
	"strings"
	"time"
)

var now = time.Now

func timestamp() string {
	return now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// inspect exposes the object form of value: maps with string keys, and
// structs through their json field names. Everything else is not an object.
func inspect(value any) view {
	result := view{value: value}
	if value == nil {
		return result
	}

	if m, ok := value.(map[string]any); ok {
		result.object = m
		result.isObject = true
		return result
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		result.object = structToMap(v)
		result.isObject = true
	case reflect.Map:
		if v.IsNil() || v.Type().Key().Kind() != reflect.String {
			return result
		}
		object := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			object[iter.Key().String()] = iter.Value().Interface()
		}
		result.object = object
		result.isObject = true
	}
	return result
}

// structToMap flattens a struct into its json keys.
// Fields tagged omitempty are left out when empty, like encoding/json does.
func structToMap(v reflect.Value) map[string]any {
	result := make(map[string]any)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		split := strings.Split(tag, ",")
		name := split[0]

		if field.Anonymous && name == "" {
			embedded := value
			if embedded.Kind() == reflect.Ptr {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				for k, v := range structToMap(embedded) {
					if _, exists := result[k]; !exists {
						result[k] = v
					}
				}
				continue
			}
		}

		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		if hasOption(split[1:], "omitempty") && isEmptyValue(value) {
			continue
		}

		result[name] = value.Interface()
	}
	return result
}

func hasOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func isArray(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toInt64(value any) int64 {
	if value == nil {
		return 0
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return int64(v.Float())
	}
	return 0
}
