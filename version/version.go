package version

import (
	mtypes "github.com/nftmx/node/x/market/types"
)

// set with -ldflags at build time
var (
	version = "master"
	commit  = ""
	date    = ""
)

// Info describes the running binary
type Info struct {
	Version       string `json:"version"`
	Commit        string `json:"commit,omitempty"`
	Date          string `json:"date,omitempty"`
	EngineVersion string `json:"engine_version"`
}

func Get() Info {
	return Info{
		Version:       version,
		Commit:        commit,
		Date:          date,
		EngineVersion: mtypes.EngineVersion,
	}
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func Date() string {
	return date
}
