// Package config reads typed settings from namespaced environment variables
//
//	root := config.New()
//	pg := root.Prefix("SERVICE_PGSQL_")
//	dsn := pg.MustString("DBURL") // SERVICE_PGSQL_DBURL
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"copsoq/internal/platform/logger"
)

// Conf is a prefix over the process environment
type Conf struct{ prefix string }

// New is the unprefixed root
func New() Conf { return Conf{} }

// Prefix appends p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// may parses the variable with parse, falling back to def when unset or
// unparsable; a bad value is logged so typos do not go unnoticed
func may[T any](c Conf, k string, def T, parse func(string) (T, error)) T {
	s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(k)).Str("value", s).Err(err).Msg("bad config value, using default")
		return def
	}
	return v
}

// MustString panics when the variable is unset or blank
func (c Conf) MustString(k string) string {
	v := c.lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(k, def string) string {
	return may(c, k, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the integer value or def
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi) }

// MayInt32 is MayInt for values that must fit an int32; out of range falls back to def
func (c Conf) MayInt32(k string, def int32) int32 {
	return may(c, k, def, func(s string) (int32, error) {
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	})
}

// MayBool accepts anything strconv.ParseBool does
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool) }

// MayDuration accepts time.ParseDuration syntax, e.g. 500ms
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration)
}

// MayCSV splits a comma separated list, dropping blanks; def when nothing is left
func (c Conf) MayCSV(k string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
