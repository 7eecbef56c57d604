package appupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, tag string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"tag_name": "` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0", http.StatusOK)
	res, err := Check(context.Background(), CheckOptions{
		CurrentVersion:   "v1.1.0",
		LatestReleaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.UpdateAvailable || res.LatestVersion != "v1.2.0" {
		t.Fatalf("expected update to v1.2.0, got %+v", res)
	}
}

func TestCheck_AlreadyCurrent(t *testing.T) {
	srv := releaseServer(t, "v1.1.0", http.StatusOK)
	res, err := Check(context.Background(), CheckOptions{
		CurrentVersion:   "1.1.0", // missing v prefix is tolerated
		LatestReleaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdateAvailable {
		t.Fatalf("no update expected, got %+v", res)
	}
}

func TestCheck_DevBuildSkipsNetwork(t *testing.T) {
	res, err := Check(context.Background(), CheckOptions{
		CurrentVersion:   "dev",
		LatestReleaseURL: "http://127.0.0.1:1", // would fail if contacted
	})
	if err != nil {
		t.Fatalf("dev build should not error, got %v", err)
	}
	if res.UpdateAvailable || res.CurrentVersion != "" {
		t.Fatalf("dev build should skip the check, got %+v", res)
	}
}

func TestCheck_HTTPError(t *testing.T) {
	srv := releaseServer(t, "v9.9.9", http.StatusForbidden)
	if _, err := Check(context.Background(), CheckOptions{
		CurrentVersion:   "v1.0.0",
		LatestReleaseURL: srv.URL,
	}); err == nil {
		t.Fatal("expected HTTP error")
	}
}

func TestNormalizeReleaseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v1.2.3-rc.1", ""},
		{"v1.2.3+meta", ""},
		{"garbage", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeReleaseVersion(tc.in); got != tc.want {
			t.Fatalf("normalizeReleaseVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
