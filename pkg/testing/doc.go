// Package testing provides a widget tester for fab.
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := fabtest.NewTesterWithT(t)
//	    tester.SetPlatform(platform.Android(28))
//	    tester.PumpWidget(fab.FAB{OnClickAction: onClick})
//
//	    if err := tester.Tap(fabtest.ByKey(fab.KeySurface)); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a fake clock. Advance it frame by frame:
//
//	tester.PumpFor(100 * time.Millisecond)
//	tester.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fabtest "github.com/go-drift/fab/pkg/testing"
package testing
