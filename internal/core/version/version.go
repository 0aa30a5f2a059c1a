// Package version reports what build is running
//
//	go build -ldflags "-X copsoq/internal/core/version.version=v0.3.0 -X copsoq/internal/core/version.commit=abcd1234"
//
// commit and date fall back to the vcs stamp go build embeds
package version

import (
	"runtime/debug"
	"sync"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var (
	service = "copsoq-api"
	version = "dev"
	commit  = ""
	date    = ""

	once sync.Once
	info BuildInfo
)

// Info returns the build stamp
func Info() BuildInfo {
	once.Do(func() { info = resolve(service, version, commit, date, debug.ReadBuildInfo) })
	return info
}

// ShortCommit is the first seven characters of the commit
func ShortCommit() string {
	c := Info().Commit
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func resolve(svc, ver, sha, at string, read func() (*debug.BuildInfo, bool)) BuildInfo {
	if bi, ok := read(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if sha == "" {
					sha = s.Value
				}
			case "vcs.time":
				if at == "" {
					at = s.Value
				}
			}
		}
	}
	if sha == "" {
		sha = "unknown"
	}
	if at == "" {
		at = "unknown"
	}
	return BuildInfo{Service: svc, Version: ver, Commit: sha, Date: at}
}
