package benchmark

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// FatalError prints error message and exits with code 127
func FatalError(err string) {
	fmt.Printf("fatal error: %v\n", err)
	os.Exit(127)
}

// SplitList splits a comma separated flag value, dropping blanks
func SplitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// DumpOptions returns "Field => value" lines for a (possibly nested) options struct
func DumpOptions(opts interface{}) string {
	var lines []string
	dumpOptions(reflect.ValueOf(opts), "", &lines)

	return strings.Join(lines, "\n")
}

func dumpOptions(val reflect.Value, indent string, lines *[]string) {
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			*lines = append(*lines, indent+"nil")
			return
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		*lines = append(*lines, indent+formatOption(val))
		return
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		fv := val.Field(i)
		if fv.Kind() == reflect.Struct {
			*lines = append(*lines, indent+field.Name+" =>")
			dumpOptions(fv, indent+"  ", lines)
			continue
		}
		*lines = append(*lines, indent+field.Name+" => "+formatOption(fv))
	}
}

func formatOption(val reflect.Value) string {
	switch val.Kind() {
	case reflect.String:
		return strconv.Quote(val.String())
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Bool {
			// repeatable flags like -vv
			return strconv.Itoa(val.Len())
		}
	}

	return fmt.Sprintf("%v", val.Interface())
}
