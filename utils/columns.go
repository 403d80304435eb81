package utils

import "reflect"

// ColumnList returns the "db" tag of every field of T, in declaration order.
// Used by dbmodels to keep SELECT column lists in sync with the scan targets.
func ColumnList[T any]() []string {
	var model T
	typ := reflect.TypeOf(model)

	columns := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if tag, ok := typ.Field(i).Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}
