//go:build !windows

package daemon

import "net"

func listen(path string) (net.Listener, error) {
	return net.Listen("unix", path)
}
