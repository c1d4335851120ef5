package config

import (
	"net"
	"strconv"

	"github.com/urfave/cli/v3"
)

// Server holds HTTP listener configuration
type Server struct {
	Addr string
	Port int64
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address",
			Value:       "127.0.0.1",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_ADDR"),
		},
		&cli.Int64Flag{
			Name:        "port",
			Usage:       "Listen port",
			Value:       8080,
			Destination: &c.Port,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_PORT"),
		},
	}
}

// ListenAddr returns the address:port pair the server binds to.
func (c *Server) ListenAddr() string {
	return net.JoinHostPort(c.Addr, strconv.FormatInt(c.Port, 10))
}
