package service

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/advisory-trading/market-analysis-agent/pkg/a2a"
	"github.com/advisory-trading/market-analysis-agent/pkg/analysis"
	"github.com/advisory-trading/market-analysis-agent/pkg/errors"
	"github.com/advisory-trading/market-analysis-agent/pkg/jsonrpc"
	"github.com/advisory-trading/market-analysis-agent/pkg/provider"
	"github.com/advisory-trading/market-analysis-agent/pkg/stores"
)

/*
AgentServer exposes the agent card and the tasks/send operation over HTTP.
Task failures are reported in the task status, not as HTTP errors, so both
terminal states respond 200.
*/
type AgentServer struct {
	app      *fiber.App
	analyzer *analysis.Analyzer
	store    stores.TaskStore
	modelID  string
	region   string
}

func NewAgentServer(model provider.TextGenerator, modelID string, region string) *AgentServer {
	srv := &AgentServer{
		app: fiber.New(fiber.Config{
			AppName:      "MarketAnalysisAgent",
			ServerHeader: "A2A-Agent-Server",
		}),
		analyzer: analysis.NewAnalyzer(model),
		store:    stores.NewInMemoryTaskStore(),
		modelID:  modelID,
		region:   region,
	}

	srv.app.Use(logger.New(), healthcheck.NewHealthChecker())
	srv.app.Get("/", srv.handleRoot)
	srv.app.Get("/.well-known/agent.json", srv.handleAgentCard)
	srv.app.Get("/agent-card", srv.handleAgentCard)
	srv.app.Post("/tasks/send", srv.handleSendTask)
	srv.app.Post("/rpc", srv.handleRPC)

	return srv
}

func (srv *AgentServer) Start(addr string) error {
	return srv.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// App exposes the underlying fiber app for in-process testing.
func (srv *AgentServer) App() *fiber.App {
	return srv.app
}

func (srv *AgentServer) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (srv *AgentServer) handleAgentCard(ctx fiber.Ctx) error {
	return ctx.JSON(a2a.NewAgentCard(ctx.Hostname(), srv.modelID, srv.region))
}

func (srv *AgentServer) handleSendTask(ctx fiber.Ctx) error {
	task, err := a2a.NewTaskFromRequest(ctx.Body())

	if err != nil {
		log.Error("failed to parse task", "error", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(errors.ErrParseError)
	}

	result := srv.analyzer.Analyze(ctx.Context(), task)

	if rpcErr := srv.store.Put(ctx.Context(), result); rpcErr != nil {
		log.Warn("task not recorded", "error", rpcErr)
	}

	return ctx.JSON(result)
}

/*
handleRPC is the JSON-RPC 2.0 surface mirroring the REST-style send
endpoint; params for tasks/send is the task object itself.
*/
func (srv *AgentServer) handleRPC(ctx fiber.Ctx) error {
	var request jsonrpc.RPCRequest

	if err := json.Unmarshal(ctx.Body(), &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(jsonrpc.RPCResponse{
			JSONRPC: "2.0",
			Error:   errors.ErrParseError,
		})
	}

	switch request.Method {
	case "tasks/send":
		task, err := a2a.NewTaskFromRequest(request.Params)

		if err != nil {
			return srv.respondError(ctx, request,
				errors.ErrInvalidParams.WithMessagef("failed to unmarshal task: %v", err))
		}

		result := srv.analyzer.Analyze(ctx.Context(), task)

		if rpcErr := srv.store.Put(ctx.Context(), result); rpcErr != nil {
			log.Warn("task not recorded", "error", rpcErr)
		}

		return srv.respondResult(ctx, request, result)
	case "tasks/get":
		var params struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(request.Params, &params); err != nil {
			return srv.respondError(ctx, request,
				errors.ErrInvalidParams.WithMessagef("failed to unmarshal params: %v", err))
		}

		task, rpcErr := srv.store.Get(ctx.Context(), params.ID)

		if rpcErr != nil {
			return srv.respondError(ctx, request, rpcErr)
		}

		return srv.respondResult(ctx, request, task)
	default:
		return srv.respondError(ctx, request,
			errors.ErrMethodNotFound.WithMessagef("%s: %s",
				errors.ErrMethodNotFound.Message, request.Method))
	}
}

func (srv *AgentServer) respondResult(
	ctx fiber.Ctx, request jsonrpc.RPCRequest, result any,
) error {
	return ctx.JSON(jsonrpc.RPCResponse{
		JSONRPC: "2.0",
		ID:      request.ID,
		Result:  result,
	})
}

func (srv *AgentServer) respondError(
	ctx fiber.Ctx, request jsonrpc.RPCRequest, rpcErr *errors.RpcError,
) error {
	log.Error("rpc request failed", "method", request.Method, "error", rpcErr)

	return ctx.JSON(jsonrpc.RPCResponse{
		JSONRPC: "2.0",
		ID:      request.ID,
		Error:   rpcErr,
	})
}
