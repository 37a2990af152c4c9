package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	rosterpb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/roster/v1"
	settingspb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/settings/v1"
	storepb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/store/v1"
	"github.com/ogurasousui/kintai-points/internal/adapters/grpc/handler"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"github.com/ogurasousui/kintai-points/internal/core/settings"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, rosterSvc roster.UseCase, storeSvc storetag.UseCase, settingsSvc settings.UseCase, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)
	rosterpb.RegisterRosterServiceServer(srv, handler.NewRosterGrpcHandler(rosterSvc))
	storepb.RegisterStoreServiceServer(srv, handler.NewStoreGrpcHandler(storeSvc))
	settingspb.RegisterSettingsServiceServer(srv, handler.NewSettingsGrpcHandler(settingsSvc))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
