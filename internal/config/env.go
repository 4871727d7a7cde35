package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks a config struct and overwrites every `env`-tagged
// field whose variable is set. Durations stay strings here and are parsed
// where they are consumed, so only string and int fields exist.
func applyEnvOverrides(section any) error {
	val := reflect.ValueOf(section).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		name := fieldType.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s: expected an integer, got %q", name, raw)
			}
			field.SetInt(int64(n))
		default:
			return fmt.Errorf("%s: field %s has unsupported kind %s", name, fieldType.Name, field.Kind())
		}
	}

	return nil
}
