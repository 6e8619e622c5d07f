package appstate

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/mecsphere/appo/pkg/config"
)

type contextKey string

const (
	stateKey contextKey = "app_state"
)

// BaseDeps carries the collaborators every handler needs.
type BaseDeps struct {
	Config *config.Config
	Repo   uc.Repository
}

func NewBaseDeps(cfg *config.Config, repo uc.Repository) BaseDeps {
	return BaseDeps{
		Config: cfg,
		Repo:   repo,
	}
}

// State is the application state shared with HTTP handlers through the
// request context.
type State struct {
	BaseDeps
	Patterns *instanceinfo.PatternSet
}

func NewState(deps BaseDeps) (*State, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	patterns, err := instanceinfo.NewPatternSet(&deps.Config.Validation)
	if err != nil {
		return nil, fmt.Errorf("building identifier patterns: %w", err)
	}
	return &State{
		BaseDeps: deps,
		Patterns: patterns,
	}, nil
}

func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

func GetState(ctx context.Context) (*State, error) {
	state, ok := ctx.Value(stateKey).(*State)
	if !ok {
		return nil, fmt.Errorf("app state not found in context")
	}
	return state, nil
}

// StateMiddleware attaches the application state to every request context.
func StateMiddleware(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithState(c.Request.Context(), state)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
