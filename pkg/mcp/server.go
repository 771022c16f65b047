package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"wordrank/internal/config"
	model "wordrank/internal/model/wordfreq"
	"wordrank/internal/service/wordfreq"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type WordRankServer struct {
	service *wordfreq.WordFreqService
	logger  *zap.Logger
	handler *mcp.StreamableHTTPHandler
	httpSrv *http.Server
}

type TopKWordsParams struct {
	Lines []string `json:"lines" jsonschema:"the text lines to scan for words"`
	K     *int     `json:"k,omitempty" jsonschema:"how many words to return, defaults to the server setting"`
}

func NewWordRankServer(service *wordfreq.WordFreqService, cfg *config.Config, logger *zap.Logger) *WordRankServer {
	server := &WordRankServer{
		service: service,
		logger:  logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "WordRank",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "topKWords",
		Description: "Return the k most frequent words across the given lines. Words are runs of ASCII letters and digits, compared case-insensitively. Ties are ordered alphabetically.",
	}, server.handleTopKWords)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.httpSrv = &http.Server{Addr: cfg.Mcp.GetAddress(), Handler: server.handler}
	return server
}

func (s *WordRankServer) handleTopKWords(ctx context.Context, req *mcp.CallToolRequest, args TopKWordsParams) (*mcp.CallToolResult, any, error) {
	k := s.service.ResolveK(args.K)
	s.logger.Info("Handling topKWords request", zap.Int("lines", len(args.Lines)), zap.Int("k", k))

	if k < 0 {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("k must not be negative: %d", k)}},
			IsError: true,
		}, nil, nil
	}

	report := s.service.Analyze(args.Lines, k)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: formatReport(report)}},
	}, nil, nil
}

func formatReport(report *wordfreq.Report) string {
	var result strings.Builder
	result.WriteString(model.Format(report.Words))
	result.WriteString(fmt.Sprintf("\n%d tokens, %d distinct, %d lines",
		report.TotalTokens, report.DistinctTokens, report.Lines))
	return result.String()
}

// ListenAndServe serves the MCP endpoint on mcp.host:mcp.port until Shutdown
func (s *WordRankServer) ListenAndServe() error {
	s.logger.Info("MCP Server going to listen", zap.String("address", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func (s *WordRankServer) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *WordRankServer) Handler() http.Handler {
	return s.handler
}
