package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a server accepts connections on, plain or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a transport front end over the graph façade.
// Start blocks until the server stops; a graceful Stop makes Start return nil.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
