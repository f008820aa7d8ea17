package agent

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// splitParams turns "a=1,b" into {"a": "1", "b": ""}.
func splitParams(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr parses and removes a parameter, or returns defaultValue if it is
// absent. A bool key without a value reads as true.
func PopParamOr[T interface{ bool | int | float64 }](params map[string]string, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	delete(params, key)

	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case int:
		parsed, err = strconv.Atoi(value)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	case bool:
		if value == "" {
			parsed = true
		} else {
			parsed, err = strconv.ParseBool(value)
		}
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse parameter %s=%q", key, value)
	}
	return parsed.(T), nil
}

func milliseconds(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
