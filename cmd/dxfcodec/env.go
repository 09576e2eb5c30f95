package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/zooyer/dxf-codec/config"
)

type envKey struct{}

// env 命令执行期间共享的状态
type env struct {
	Cfg *config.Config
	Log *zap.Logger
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{Log: zap.NewNop()})
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{Log: zap.NewNop()}
}
