package version

import (
	"runtime"
)

var (
	// Version 版本号，构建时通过 -ldflags 注入
	Version = "0.0.0-dev"
	// GitCommit 构建时的 git 提交，构建时通过 -ldflags 注入
	GitCommit = "unknown"
)

// Info 版本信息
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GoVersion string `json:"goVersion"`
	Arch      string `json:"arch"`
	OS        string `json:"os"`
}

// GetVersionInfo 获取版本信息
func GetVersionInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Arch:      runtime.GOARCH,
		OS:        runtime.GOOS,
	}
}
