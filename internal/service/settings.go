package service

import (
	"strconv"

	"retiro-storefront/internal/model"
)

type settingValues map[string]string

func indexSettings(settings []model.Setting) settingValues {
	values := make(settingValues, len(settings))
	for _, s := range settings {
		values[s.ID] = s.Value
	}
	return values
}

// boolean reports whether key is stored as "true". Missing keys keep def.
func (v settingValues) boolean(key string, def bool) bool {
	raw, ok := v[key]
	if !ok {
		return def
	}
	return raw == "true"
}

// positive parses key as a positive integer. Missing or malformed values keep def.
func (v settingValues) positive(key string, def int) int {
	n, err := strconv.Atoi(v[key])
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// text returns key, or def when it is missing or blank.
func (v settingValues) text(key, def string) string {
	if s := v[key]; s != "" {
		return s
	}
	return def
}

func boolSetting(id string, value bool) model.Setting {
	return model.Setting{ID: id, Value: strconv.FormatBool(value), Type: "boolean"}
}

func intSetting(id string, value int) model.Setting {
	return model.Setting{ID: id, Value: strconv.Itoa(value), Type: "number"}
}

func textSetting(id, value string) model.Setting {
	return model.Setting{ID: id, Value: value, Type: "string"}
}
