// Package platform reports which host OS a widget is running on.
//
// Widgets resolve platform-dependent behaviour once, from the [Identity]
// returned by [Current], when their state is created.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/go-drift/fab/pkg/errors"
)

// OS names a host operating system.
type OS string

const (
	OSAndroid OS = "android"
	OSIOS     OS = "ios"
	OSOther   OS = "other"
)

// LollipopAPILevel is the first Android API level with native ripple
// feedback (Android 5.0).
const LollipopAPILevel = 21

// lollipopRelease is the Android release matching LollipopAPILevel.
const lollipopRelease = "5.0"

// Environment variables read by FromEnv.
const (
	EnvOS       = "FAB_PLATFORM_OS"
	EnvAPILevel = "FAB_PLATFORM_API_LEVEL"
	EnvRelease  = "FAB_PLATFORM_RELEASE"
)

// Identity describes the host platform.
//
// Go cannot read the Android SDK level on its own, so a process built for
// GOOS=android starts with neither APILevel nor Release set and falls back
// to opacity feedback. Embedders pass the real version with [SetCurrent]
// or the FAB_PLATFORM_* variables. The missing version is reported
// through the error handler when the package initialises.
type Identity struct {
	// OS is the host operating system.
	OS OS
	// APILevel is the Android SDK level. Zero means unknown.
	APILevel int
	// Release is the user-facing OS version, e.g. "5.1.1" or "17.4".
	Release string
}

// Android returns an Android identity at the given API level.
func Android(apiLevel int) Identity {
	return Identity{OS: OSAndroid, APILevel: apiLevel}
}

// IOS returns an iOS identity with the given release.
func IOS(release string) Identity {
	return Identity{OS: OSIOS, Release: release}
}

// String returns e.g. "android/21" or "ios/17.4".
func (id Identity) String() string {
	switch {
	case id.APILevel > 0:
		return fmt.Sprintf("%s/%d", id.OS, id.APILevel)
	case id.Release != "":
		return fmt.Sprintf("%s/%s", id.OS, id.Release)
	default:
		return string(id.OS)
	}
}

// AtLeastRelease reports whether Release is a valid version at or above
// release. Versions are compared with semantic versioning rules, so
// "5.1" >= "5.0" and "10" >= "9.3".
func (id Identity) AtLeastRelease(release string) bool {
	have := canonicalRelease(id.Release)
	want := canonicalRelease(release)
	if have == "" || want == "" {
		return false
	}
	return semver.Compare(have, want) >= 0
}

// SupportsRipple reports whether the platform draws native ripple
// feedback: Android at or above Lollipop. The API level decides when
// known, the release otherwise.
func (id Identity) SupportsRipple() bool {
	if id.OS != OSAndroid {
		return false
	}
	if id.APILevel > 0 {
		return id.APILevel >= LollipopAPILevel
	}
	return id.AtLeastRelease(lollipopRelease)
}

// canonicalRelease converts "5.0.1" to "v5.0.1". Returns "" when the
// release is not a valid version.
func canonicalRelease(release string) string {
	release = strings.TrimSpace(release)
	if release == "" {
		return ""
	}
	if !strings.HasPrefix(release, "v") {
		release = "v" + release
	}
	if !semver.IsValid(release) {
		return ""
	}
	return release
}

var (
	currentMu sync.RWMutex
	current   = detect()
)

// Current returns the identity of the host platform.
func Current() Identity {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent overrides the host identity and returns the previous one.
// Embedders call it once at startup with values from the native side;
// tests use it to simulate devices.
func SetCurrent(id Identity) Identity {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = id
	return prev
}

// detect derives the identity from the build target and environment.
func detect() Identity {
	return resolve(runtime.GOOS, os.LookupEnv)
}

func resolve(goos string, lookup func(string) (string, bool)) Identity {
	id := Identity{OS: fromGOOS(goos)}
	env, err := FromEnv(lookup)
	if err != nil {
		errors.Report(&errors.Error{Op: "platform.detect", Kind: errors.KindPlatform, Err: err})
	} else if env.OS != "" {
		id = env
	}
	if id.OS == OSAndroid && id.APILevel == 0 && canonicalRelease(id.Release) == "" {
		errors.Report(&errors.Error{
			Op:   "platform.detect",
			Kind: errors.KindPlatform,
			Err:  fmt.Errorf("android version unknown, set %s or call SetCurrent; ripple feedback is off", EnvAPILevel),
		})
	}
	return id
}

func fromGOOS(goos string) OS {
	switch goos {
	case "android":
		return OSAndroid
	case "ios":
		return OSIOS
	default:
		return OSOther
	}
}

// FromEnv reads an identity from FAB_PLATFORM_* variables. OS is empty
// when FAB_PLATFORM_OS is unset.
func FromEnv(lookup func(string) (string, bool)) (Identity, error) {
	var id Identity
	osName, ok := lookup(EnvOS)
	if !ok || strings.TrimSpace(osName) == "" {
		return id, nil
	}
	parsed, err := ParseOS(osName)
	if err != nil {
		return Identity{}, err
	}
	id.OS = parsed

	if level, ok := lookup(EnvAPILevel); ok && strings.TrimSpace(level) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(level))
		if err != nil || n < 0 {
			return Identity{}, fmt.Errorf("invalid %s %q", EnvAPILevel, level)
		}
		id.APILevel = n
	}
	if release, ok := lookup(EnvRelease); ok {
		release = strings.TrimSpace(release)
		if release != "" && canonicalRelease(release) == "" {
			return Identity{}, fmt.Errorf("invalid %s %q", EnvRelease, release)
		}
		id.Release = release
	}
	return id, nil
}

// ParseOS parses an OS name, case-insensitively.
func ParseOS(name string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "android":
		return OSAndroid, nil
	case "ios":
		return OSIOS, nil
	case "other", "desktop", "web":
		return OSOther, nil
	default:
		return "", fmt.Errorf("unknown platform OS %q", name)
	}
}
