//go:build !windows

package main

import (
	"net"
	"time"
)

func dialSession(addr string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout("unix", addr, timeout)
}
