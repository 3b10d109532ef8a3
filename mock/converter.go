package mock

import "github.com/pagemark/pagemark"

var _ pagemark.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagemark.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
