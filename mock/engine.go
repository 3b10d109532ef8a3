package mock

import "github.com/pagemark/pagemark"

var _ pagemark.Engine = (*Engine)(nil)

// Engine is a mock implementation of pagemark.Engine.
type Engine struct {
	ExtractFn func(html string, cfg pagemark.Config) (*pagemark.Result, error)
}

func (e *Engine) Extract(html string, cfg pagemark.Config) (*pagemark.Result, error) {
	return e.ExtractFn(html, cfg)
}
