package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	prev := Version
	Version, Commit, BuildTime = "v1.2.3", "abc1234", "2025-01-02T03:04:05Z"
	defer func() { Version, Commit, BuildTime = prev, "unknown", "unknown" }()

	assert.Equal(t, "netgen version v1.2.3 (commit abc1234, built 2025-01-02T03:04:05Z)", GetVersionString())

	full := GetFullVersionInfo()
	assert.True(t, strings.HasPrefix(full, GetVersionString()))
	assert.Contains(t, full, "target .NET Framework v4.8")

	info := Get()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
