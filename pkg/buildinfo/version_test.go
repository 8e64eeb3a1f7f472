package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = old })
}

func withVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestGet(t *testing.T) {
	recorded := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name string
		vars [3]string
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "ldflags win",
			vars: [3]string{"v1.0.0", "deadbeef", "2026-05-01"},
			bi:   recorded,
			want: Info{Version: "v1.0.0", Commit: "deadbeef", Date: "2026-05-01"},
		},
		{
			name: "falls back to recorded info",
			vars: [3]string{"dev", "none", "unknown"},
			bi:   recorded,
			want: Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"},
		},
		{
			name: "devel module version ignored",
			vars: [3]string{"dev", "none", "unknown"},
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: "none", Date: "unknown"},
		},
		{
			name: "no build info",
			vars: [3]string{"dev", "none", "unknown"},
			want: Info{Version: "dev", Commit: "none", Date: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVars(t, tt.vars[0], tt.vars[1], tt.vars[2])
			withBuildInfo(t, tt.bi)

			got := Get()
			if got.GoVersion == "" {
				t.Error("Get().GoVersion is empty")
			}
			got.GoVersion = ""
			if got != tt.want {
				t.Errorf("Get() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	withVars(t, "v1.2.3", "cafe", "today")
	withBuildInfo(t, nil)

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q, want version line first", got)
	}
	if !strings.Contains(String(), "commit: cafe") {
		t.Errorf("String() = %q, want commit", String())
	}
}
