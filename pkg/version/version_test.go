package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version || info.GitCommit != Commit || info.BuildTime != BuildTime {
		t.Errorf("Get() = %+v, does not reflect build variables", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("Platform = %q, want %q", info.Platform, want)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc", BuildTime: "now", GoVersion: "go1.23.1", Platform: "linux/amd64"}

	want := "foldersnap version 1.2.3 (commit: abc) built at now with go1.23.1 on linux/amd64"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Get().String(), AppName+" version ") {
		t.Errorf("String() = %q, want prefix %q", Get().String(), AppName+" version ")
	}
}
