//go:build !amd64 && !arm64

package su3

// Other architectures keep the 16-byte scalar-mode defaults from
// dispatch.go.
