package core

// Disposable is anything holding resources released by Dispose.
type Disposable interface {
	Dispose()
}

// Listenable notifies listeners of changes and returns an unsubscribe
// function from AddListener.
type Listenable interface {
	AddListener(fn func()) func()
}

// UseController creates a controller and registers it for automatic
// disposal when the state is disposed.
//
//	func (s *myState) InitState() {
//	    s.presence = core.UseController(s, func() *animation.Value {
//	        return animation.NewValue(1)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(controller.Dispose)
	return controller
}

// UseListenable subscribes to a listenable and rebuilds on every change.
// The subscription is removed when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
