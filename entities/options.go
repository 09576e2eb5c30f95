package entities

import (
	"go.uber.org/zap"
)

type options struct {
	log          *zap.Logger
	writeHandles bool
}

// Option 配置 Reader 与 Writer
type Option func(*options)

// WithLogger 指定日志，默认不输出
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithHandles 写出时是否输出实体句柄 (组码 5)
func WithHandles(write bool) Option {
	return func(o *options) {
		o.writeHandles = write
	}
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
