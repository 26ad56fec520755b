//go:build windows

package main

import (
	"context"
	"net"
	"time"

	winio "github.com/Microsoft/go-winio"
)

func dialSession(addr string, timeout time.Duration) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return winio.DialPipeContext(ctx, addr)
}
