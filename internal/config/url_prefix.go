package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix абсолютный http(s) адрес без завершающего слэша
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimRight(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Join добавляет элементы пути к префиксу
func (p URLPrefix) Join(elem ...string) string {
	joined, err := url.JoinPath(string(p), elem...)
	if err != nil {
		return string(p) + "/" + strings.Join(elem, "/")
	}
	return joined
}
