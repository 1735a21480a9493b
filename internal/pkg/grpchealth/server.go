package grpchealth

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"bookstore/pkg/logger"
)

// Server отдает grpc.health.v1 для оркестратора, статус зеркалит готовность HTTP API.
type Server struct {
	log    logger.Logger
	grpc   *grpc.Server
	health *health.Server
	port   string
}

func New(log logger.Logger, port string) *Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		log:    log.With(logger.NewField("grpc_health_port", port)),
		grpc:   grpcServer,
		health: healthServer,
		port:   port,
	}
}

// Start блокирует до Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	s.log.Info("grpc health server starting")
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
