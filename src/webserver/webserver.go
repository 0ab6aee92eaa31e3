// Package webserver deals with the HTTP interface of the application. It
// wires the API handlers and controls the lifecycle of the HTTP server.
package webserver

import (
	"context"
	"crypto/tls"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/config"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/flight"
	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/metrics"
	"github.com/fungalore/aurral/src/scaler"
	"github.com/fungalore/aurral/src/settings"
)

// Server is the HTTP server of the application. It will be controlled from
// here.
type Server struct {

	// Configuration of this server.
	cfg config.Config

	// WG used in Server.Wait to sync with the server's end.
	wg sync.WaitGroup

	// Makes sure Serve does not return before all the starting work has
	// been finished.
	startWG sync.WaitGroup

	// The actual http.Server doing the HTTP work.
	httpSrv *http.Server

	// The server's net.Listener. Used in the Server.Stop func.
	listener net.Listener

	// Context for background work which must survive single requests but
	// not the server itself.
	ctx context.Context

	lib      library.Library
	store    *settings.Store
	src      meta.Source
	covers   *covers.Cache
	builder  *aggregate.Builder
	registry *flight.Registry[aggregate.Artist]
	scaler   *scaler.Pool
}

// NewServer returns a new Server using the supplied configuration and
// collaborators. The returned server is ready and calling its Serve method
// will start it.
func NewServer(
	ctx context.Context,
	cfg config.Config,
	lib library.Library,
	store *settings.Store,
	src meta.Source,
) *Server {
	return &Server{
		ctx:      ctx,
		cfg:      cfg,
		lib:      lib,
		store:    store,
		src:      src,
		covers:   covers.NewCache(ctx, store),
		builder:  aggregate.NewBuilder(lib, store, src),
		registry: flight.NewRegistry[aggregate.Artist](),
		scaler:   scaler.NewPool(ctx),
	}
}

// Serve starts the server. It attaches all the handlers and starts
// listening while consulting the configuration. Trying to call this method
// more than once for the same server will result in panic.
func (srv *Server) Serve() {
	if srv.listener != nil {
		panic("Second Server.Serve call for the same server")
	}
	srv.wg.Add(1)
	srv.startWG.Add(1)
	go srv.serveGoroutine()
	srv.startWG.Wait()
}

func (srv *Server) serveGoroutine() {
	defer srv.wg.Done()

	var handler http.Handler = srv.router()

	if srv.cfg.Gzip {
		log.Println("Adding gzip handler")
		handler = NewGzipHandler(handler)
	}

	if srv.cfg.Auth {
		log.Println("Adding authentication handler")
		handler = NewAuthHandler(
			handler,
			srv.cfg.Authenticate.User,
			srv.cfg.Authenticate.Password,
			srv.cfg.Authenticate.Secret,
			[]string{
				APIv1EndpointLoginToken,
				EndpointMetrics,
			},
		)
	}

	srv.httpSrv = &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        handler,
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}

	var reason error
	if srv.cfg.SSL {
		reason = srv.listenAndServeTLS(
			srv.cfg.SSLCertificate.Crt,
			srv.cfg.SSLCertificate.Key,
		)
	} else {
		reason = srv.listenAndServe()
	}

	log.Println("Webserver stopped.")
	if reason != nil {
		log.Printf("Reason: %s\n", reason)
	}
}

// router attaches all the API handlers on their endpoints.
func (srv *Server) router() *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(true)

	router.Handle(
		APIv1EndpointArtistStream,
		NewArtistStreamHandler(
			srv.ctx, srv.registry, srv.builder, srv.covers, srv.store, srv.src,
		),
	).Methods(APIv1Methods[APIv1EndpointArtistStream]...)

	router.Handle(
		APIv1EndpointArtistCover,
		NewArtistCoverHandler(srv.ctx, srv.covers, srv.store, srv.src),
	).Methods(APIv1Methods[APIv1EndpointArtistCover]...)

	router.Handle(
		APIv1EndpointArtistSimilar,
		NewSimilarArtistsHandler(srv.src),
	).Methods(APIv1Methods[APIv1EndpointArtistSimilar]...)

	router.Handle(
		APIv1EndpointArtistPreview,
		NewArtistPreviewHandler(srv.ctx, srv.covers, srv.store, srv.src, srv.scaler),
	).Methods(APIv1Methods[APIv1EndpointArtistPreview]...)

	router.Handle(
		APIv1EndpointArtistOverride,
		NewArtistOverrideHandler(srv.store),
	).Methods(APIv1Methods[APIv1EndpointArtistOverride]...)

	router.Handle(
		APIv1EndpointLoginToken,
		NewLoginTokenHandler(srv.cfg.Authenticate),
	).Methods(APIv1Methods[APIv1EndpointLoginToken]...)

	router.Handle(EndpointMetrics, metrics.Handler()).Methods(http.MethodGet)

	return router
}

// listenAndServe uses our own listener to make the server stoppable.
// Similar to net/http's ListenAndServe, only this version saves a
// reference to the listener.
func (srv *Server) listenAndServe() error {
	addr := srv.httpSrv.Addr
	if addr == "" {
		addr = ":http"
	}
	lsn, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv.listener = lsn
	log.Println("Webserver started.")
	srv.startWG.Done()
	return srv.httpSrv.Serve(lsn)
}

// listenAndServeTLS is listenAndServe for the SSL configuration.
func (srv *Server) listenAndServeTLS(certFile, keyFile string) error {
	addr := srv.httpSrv.Addr
	if addr == "" {
		addr = ":https"
	}

	tlsCfg := &tls.Config{}
	if srv.httpSrv.TLSConfig != nil {
		tlsCfg = srv.httpSrv.TLSConfig.Clone()
	}
	if tlsCfg.NextProtos == nil {
		tlsCfg.NextProtos = []string{"http/1.1"}
	}

	var err error
	tlsCfg.Certificates = make([]tls.Certificate, 1)
	tlsCfg.Certificates[0], err = tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return err
	}

	conn, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	tlsListener := tls.NewListener(conn, tlsCfg)
	srv.listener = tlsListener
	log.Println("Webserver started.")
	srv.startWG.Done()
	return srv.httpSrv.Serve(tlsListener)
}

// Stop stops the webserver.
func (srv *Server) Stop() {
	if srv.listener != nil {
		srv.listener.Close()
		srv.listener = nil
	}
	srv.scaler.Stop()
}

// Wait syncs whoever called this with the server's stop.
func (srv *Server) Wait() {
	srv.wg.Wait()
}
