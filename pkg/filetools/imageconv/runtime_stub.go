//go:build !govips || !cgo

package imageconv

// Startup is a no-op for the pure Go build.
func Startup() error {
	return nil
}

// Shutdown is a no-op for the pure Go build.
func Shutdown() {}

func newTransformer() (Transformer, error) {
	return stdlibTransformer{}, nil
}
