package apiclient

import (
	"context"
	"net/http"

	"studio/pkg/types"
)

// Backend REST endpoints.
const (
	PathHealth         = "/api/health"
	PathSystem         = "/api/system"
	PathModels         = "/api/models"
	PathTrainStart     = "/api/train/start"
	PathTrainingStatus = "/api/train/status"
	PathEcho           = "/api/echo"
)

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (types.HealthStatus, error) {
	var out types.HealthStatus
	err := c.Do(ctx, PathHealth, RequestOptions{}, &out)
	return out, err
}

// SystemInfo calls GET /api/system.
func (c *Client) SystemInfo(ctx context.Context) (types.SystemInfo, error) {
	var out types.SystemInfo
	err := c.Do(ctx, PathSystem, RequestOptions{}, &out)
	return out, err
}

// Models calls GET /api/models.
func (c *Client) Models(ctx context.Context) (types.ModelsResponse, error) {
	var out types.ModelsResponse
	err := c.Do(ctx, PathModels, RequestOptions{}, &out)
	return out, err
}

// StartTraining posts cfg to /api/train/start.
func (c *Client) StartTraining(ctx context.Context, cfg types.TrainingConfig) (types.TrainingStatus, error) {
	var out types.TrainingStatus
	err := c.Do(ctx, PathTrainStart, RequestOptions{Method: http.MethodPost, Body: cfg}, &out)
	return out, err
}

// TrainingStatus calls GET /api/train/status.
func (c *Client) TrainingStatus(ctx context.Context) (types.TrainingStatus, error) {
	var out types.TrainingStatus
	err := c.Do(ctx, PathTrainingStatus, RequestOptions{}, &out)
	return out, err
}

// Echo posts {text} to /api/echo.
func (c *Client) Echo(ctx context.Context, text string) (types.EchoResponse, error) {
	var out types.EchoResponse
	err := c.Do(ctx, PathEcho, RequestOptions{Method: http.MethodPost, Body: types.EchoRequest{Text: text}}, &out)
	return out, err
}
