package platform

import (
	"testing"

	"github.com/go-drift/fab/pkg/errors"
)

func TestSupportsRipple(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want bool
	}{
		{"android kitkat", Android(19), false},
		{"android 20", Android(20), false},
		{"android lollipop", Android(21), true},
		{"android pie", Android(28), true},
		{"android release only old", Identity{OS: OSAndroid, Release: "4.4.2"}, false},
		{"android release only lollipop", Identity{OS: OSAndroid, Release: "5.0"}, true},
		{"android release only new", Identity{OS: OSAndroid, Release: "14"}, true},
		{"android unknown version", Identity{OS: OSAndroid}, false},
		{"android garbage release", Identity{OS: OSAndroid, Release: "lollipop"}, false},
		{"api level wins over release", Identity{OS: OSAndroid, APILevel: 19, Release: "9.0"}, false},
		{"ios", IOS("17.4"), false},
		{"ios high api", Identity{OS: OSIOS, APILevel: 99}, false},
		{"other", Identity{OS: OSOther}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.SupportsRipple(); got != tt.want {
				t.Errorf("%v.SupportsRipple() = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestAtLeastRelease(t *testing.T) {
	tests := []struct {
		have, want string
		ok         bool
	}{
		{"5.0", "5.0", true},
		{"5.1.1", "5.0", true},
		{"10", "9.3", true},
		{"4.4.4", "5.0", false},
		{"v6.0", "5.0", true},
		{"", "5.0", false},
		{"5.0", "", false},
	}
	for _, tt := range tests {
		id := Identity{Release: tt.have}
		if got := id.AtLeastRelease(tt.want); got != tt.ok {
			t.Errorf("AtLeastRelease(%q >= %q) = %v, want %v", tt.have, tt.want, got, tt.ok)
		}
	}
}

func TestIdentityString(t *testing.T) {
	tests := map[string]Identity{
		"android/21": Android(21),
		"ios/17.4":   IOS("17.4"),
		"other":      {OS: OSOther},
	}
	for want, id := range tests {
		if got := id.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestSetCurrent(t *testing.T) {
	prev := SetCurrent(Android(23))
	defer SetCurrent(prev)

	if got := Current(); got != Android(23) {
		t.Errorf("Current() = %v, want android/23", got)
	}
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	id, err := FromEnv(lookupFrom(map[string]string{
		EnvOS:       "Android",
		EnvAPILevel: "19",
		EnvRelease:  "4.4.2",
	}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	want := Identity{OS: OSAndroid, APILevel: 19, Release: "4.4.2"}
	if id != want {
		t.Errorf("FromEnv = %+v, want %+v", id, want)
	}
}

func TestFromEnvUnset(t *testing.T) {
	id, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if id.OS != "" {
		t.Errorf("OS = %q, want empty when unset", id.OS)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	cases := []map[string]string{
		{EnvOS: "symbian"},
		{EnvOS: "android", EnvAPILevel: "twenty"},
		{EnvOS: "android", EnvAPILevel: "-1"},
		{EnvOS: "ios", EnvRelease: "seventeen"},
	}
	for _, env := range cases {
		if _, err := FromEnv(lookupFrom(env)); err == nil {
			t.Errorf("FromEnv(%v) should fail", env)
		}
	}
}

func TestFromGOOS(t *testing.T) {
	if fromGOOS("android") != OSAndroid || fromGOOS("ios") != OSIOS || fromGOOS("linux") != OSOther {
		t.Error("unexpected GOOS mapping")
	}
}

type errorRecorder struct {
	errors []*errors.Error
}

func (r *errorRecorder) HandleError(err *errors.Error)  { r.errors = append(r.errors, err) }
func (r *errorRecorder) HandlePanic(*errors.PanicError) {}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		want    Identity
		reports int
	}{
		{"desktop", "linux", nil, Identity{OS: OSOther}, 0},
		{"android without version", "android", nil, Identity{OS: OSAndroid}, 1},
		{"android from env", "android", map[string]string{EnvOS: "android", EnvAPILevel: "29"}, Android(29), 0},
		{"env release is enough", "linux", map[string]string{EnvOS: "android", EnvRelease: "5.1"}, Identity{OS: OSAndroid, Release: "5.1"}, 0},
		{"bad env keeps goos", "ios", map[string]string{EnvOS: "ios", EnvAPILevel: "x"}, Identity{OS: OSIOS}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &errorRecorder{}
			prev := errors.SetHandler(rec)
			defer errors.SetHandler(prev)

			if got := resolve(tt.goos, lookupFrom(tt.env)); got != tt.want {
				t.Errorf("resolve = %+v, want %+v", got, tt.want)
			}
			if len(rec.errors) != tt.reports {
				t.Fatalf("reported %d errors, want %d", len(rec.errors), tt.reports)
			}
			for _, err := range rec.errors {
				if err.Kind != errors.KindPlatform {
					t.Errorf("Kind = %v, want KindPlatform", err.Kind)
				}
			}
		})
	}
}
