package types

import (
	"net"
	"strconv"
)

func joinHostPort(host string, port int) string {
	if port <= 0 {
		port = 22
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
