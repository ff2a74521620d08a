package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/greeter/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// APIClient implements Client: JSON over HTTP for the API, gRPC for health.
type APIClient struct {
	baseURL    string
	healthAddr string
	http       *http.Client
	conn       *grpc.ClientConn
	health     healthpb.HealthClient
}

func NewAPIClient(baseURL, healthAddr string) (*APIClient, error) {
	c := &APIClient{
		baseURL:    normalizeBaseURL(baseURL),
		healthAddr: healthAddr,
		http:       &http.Client{},
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

// InitGRPCClient creates the (lazy) connection to the health endpoint.
func (c *APIClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(c.healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	c.conn = conn
	c.health = healthpb.NewHealthClient(conn)
	return nil
}

// Ping succeeds only when the server reports SERVING, i.e. it is reachable
// and has finished seeding.
func (c *APIClient) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: common.HealthServiceName})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (c *APIClient) Close() error {
	c.http.CloseIdleConnections()
	return c.conn.Close()
}

func (c *APIClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.NotFound:
		// the health service does not know the service name yet
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
