package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "win32"},
		{"linux", "linux"},
		{"darwin", "darwin"},
		{"freebsd", "freebsd"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformName(tt.goos))
		})
	}
}

func TestArchitectureName(t *testing.T) {
	tests := []struct {
		goarch string
		want   string
	}{
		{"amd64", "x86_64"},
		{"arm64", "arm64"},
		{"386", "x86"},
		{"riscv64", "riscv64"},
	}

	for _, tt := range tests {
		t.Run(tt.goarch, func(t *testing.T) {
			assert.Equal(t, tt.want, ArchitectureName(tt.goarch))
		})
	}
}

func TestDetectTarget(t *testing.T) {
	target := DetectTarget()

	assert.NotEmpty(t, target.Platform)
	assert.NotEmpty(t, target.Architecture)
}
