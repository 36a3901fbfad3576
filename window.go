package main

// foreignWindow is a handle to a window belonging to another application.
// Platform files provide activeForeignWindow; see window_windows.go and
// window_stub.go.
type foreignWindow interface {
	Title() string
	Activate() error
}
