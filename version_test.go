package headeredit

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestTag_PrefixesV(t *testing.T) {
	if got, want := Tag(), "v"+Version(); got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent("headeredit-proxy"), "headeredit-proxy/"+Version(); got != want {
		t.Fatalf("user agent: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: " 0.1.0\n", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
