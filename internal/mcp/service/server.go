// Package service assembles the MCP server that exposes the economy engine
// over stdio.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	econservice "github.com/louisbranch/infinity.spark/internal/economy/service"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	"github.com/louisbranch/infinity.spark/internal/mcp/domain"
)

const (
	serverName = "infinity-spark"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config carries the collaborators the MCP server exposes.
type Config struct {
	// Economy handles every tool invocation.
	Economy *econservice.Service
	// Store backs the snapshot export tool.
	Store storage.Store
	// Now stamps snapshot exports. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Server wires the economy service into an MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with every economy tool and resource registered.
func New(cfg Config) (*Server, error) {
	if cfg.Economy == nil {
		return nil, fmt.Errorf("economy service is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	svc := cfg.Economy
	mcp.AddTool(mcpServer, domain.WalletEnsureTool(), domain.WalletEnsureHandler(svc))
	mcp.AddTool(mcpServer, domain.WalletGetTool(), domain.WalletGetHandler(svc))
	mcp.AddTool(mcpServer, domain.SlotSpinTool(), domain.SlotSpinHandler(svc))
	mcp.AddTool(mcpServer, domain.SlotClassifyTool(), domain.SlotClassifyHandler(svc))
	mcp.AddTool(mcpServer, domain.WorldCreateTool(), domain.WorldCreateHandler(svc))
	mcp.AddTool(mcpServer, domain.WorldCreateFromQueryTool(), domain.WorldCreateFromQueryHandler(svc))
	mcp.AddTool(mcpServer, domain.WorldGetTool(), domain.WorldGetHandler(svc))
	mcp.AddTool(mcpServer, domain.WorldAddPageTool(), domain.WorldAddPageHandler(svc))
	mcp.AddTool(mcpServer, domain.MarketListTool(), domain.MarketListHandler(svc))
	mcp.AddTool(mcpServer, domain.MarketUnlistTool(), domain.MarketUnlistHandler(svc))
	mcp.AddTool(mcpServer, domain.MarketPurchaseTool(), domain.MarketPurchaseHandler(svc))
	mcp.AddTool(mcpServer, domain.MarketListingsTool(), domain.MarketListingsHandler(svc))
	mcp.AddTool(mcpServer, domain.CollaboratorAddTool(), domain.CollaboratorAddHandler(svc))
	mcp.AddTool(mcpServer, domain.CollaboratorRemoveTool(), domain.CollaboratorRemoveHandler(svc))
	mcp.AddTool(mcpServer, domain.LeaderboardTool(), domain.LeaderboardHandler(svc))
	mcp.AddTool(mcpServer, domain.TransactionsTool(), domain.TransactionsHandler(svc))
	mcp.AddTool(mcpServer, domain.EconomyExportTool(), domain.EconomyExportHandler(cfg.Store, now))

	mcpServer.AddResource(domain.LeaderboardResource(), domain.LeaderboardResourceHandler(svc))
	mcpServer.AddResource(domain.TransactionsResource(), domain.TransactionsResourceHandler(svc))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
