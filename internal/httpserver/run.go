package httpserver

import (
	"context"
	"fmt"
)

// Run starts the HTTP server and blocks until it stops.
func (srv *HTTPServer) Run() error {
	srv.l.Infof(context.Background(), "HTTP server listening on :%d (%s)", srv.port, srv.environment)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
