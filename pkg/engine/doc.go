// Package engine hosts a mounted widget tree and drives its frames.
//
// A host (a test, a terminal preview, a window) owns one [Engine] and
// calls [Engine.StepFrame] once per frame. Each frame runs dispatched
// callbacks, advances animation tickers, rebuilds dirty elements and lays
// out the node tree. Pointer input is delivered with
// [Engine.HandlePointer] between frames.
//
// An Engine is not thread-safe. Use it from the host's UI thread only;
// [Engine.Dispatch] is the one method safe to call from other goroutines.
package engine
