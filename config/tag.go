package config

import (
	"reflect"
	"strconv"
	"time"
)

// TagString holds driver specific options in struct tag syntax.
// Example: baud:"115200" settle:"500ms"
type TagString reflect.StructTag

func (d TagString) GetInt(key string, defaultValue int) (int, error) {
	value := reflect.StructTag(d).Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func (d TagString) GetDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := reflect.StructTag(d).Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}

func (d TagString) Get(key string) string {
	return reflect.StructTag(d).Get(key)
}
