// Package service wires the prover loop and the query surface into
// node.LifecycleManager as two cooperative, independently startable
// services, matching the three-task concurrency model: the prover loop
// (writer), the query surface (reader), and the process's own signal
// handler (shutdown task) driving LifecycleManager.StopAll.
package service

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/timewave-computer/lightwave-go/log"
	"github.com/timewave-computer/lightwave-go/node"
)

// ProverLoop is satisfied by *prover.Loop; declared locally to avoid an
// import cycle (prover depends on anchor/circuit/baseproof, not on
// service).
type ProverLoop interface {
	Run(ctx context.Context) error
}

// LoopService adapts a ProverLoop into a node.Service. Start launches the
// loop in a background goroutine; Stop cancels its context and waits for
// it to return.
type LoopService struct {
	loop   ProverLoop
	cancel context.CancelFunc
	done   chan struct{}
	logger *log.Logger
}

func NewLoopService(loop ProverLoop) *LoopService {
	return &LoopService{loop: loop, logger: log.Module("prover-loop-service")}
}

func (s *LoopService) Name() string { return "prover-loop" }

func (s *LoopService) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		if err := s.loop.Run(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("prover loop exited", "error", err)
		}
	}()
	return nil
}

func (s *LoopService) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.done != nil {
		<-s.done
	}
	return nil
}

var _ node.Service = (*LoopService)(nil)

// QueryService adapts an http.Server into a node.Service. It serves the
// read-only GET / surface over the anchor store.
type QueryService struct {
	addr    string
	handler http.Handler
	srv     *http.Server
	mu      sync.Mutex
	logger  *log.Logger
}

func NewQueryService(addr string, handler http.Handler) *QueryService {
	return &QueryService{addr: addr, handler: handler, logger: log.Module("query-service")}
}

func (s *QueryService) Name() string { return "query-surface" }

func (s *QueryService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.srv = &http.Server{Addr: s.addr, Handler: s.handler}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("query surface exited", "error", err)
		}
	}()
	return nil
}

func (s *QueryService) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(context.Background())
}

var _ node.Service = (*QueryService)(nil)
