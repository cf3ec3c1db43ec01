package ffi

// Version identifies the library build. It is process-wide, immutable
// after program initialization, and safe to read concurrently. Release
// builds override it at link time:
//
//	go build -ldflags "-X github.com/joshuapare/memkit/ffi.Version=1.2.0"
var Version = "dev"

// LibraryVersion returns the process-wide version string.
func LibraryVersion() string {
	return Version
}
