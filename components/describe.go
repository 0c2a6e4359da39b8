package components

import (
	"fmt"
	"reflect"
	"strings"
)

// Describe formats the plain fields of a component, including those of
// embedded components, as "Name=value" pairs. Fields holding pointers,
// interfaces or collections are left out.
func Describe(comp any) string {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "<nil>"
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Sprint(comp)
	}

	var parts []string
	describeFields(val, &parts)
	return strings.Join(parts, " ")
}

func describeFields(val reflect.Value, parts *[]string) {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)
		switch fv.Kind() {
		case reflect.Struct:
			if field.Anonymous {
				describeFields(fv, parts)
			}
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			*parts = append(*parts, fmt.Sprintf("%s=%v", field.Name, fv.Interface()))
		}
	}
}

// GetComponentProperty returns the value of a property in a component
// Uses reflection to access component properties dynamically; properties of
// embedded components are found too
func GetComponentProperty(comp any, propertyName string) (any, error) {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Check if the property exists
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() {
		return nil, fmt.Errorf("property not found: %s", propertyName)
	}
	if !field.CanInterface() {
		return nil, fmt.Errorf("property not exported: %s", propertyName)
	}

	// Return the property value
	return field.Interface(), nil
}
