package mock

import "github.com/fwojciec/docent"

var _ docent.Converter = (*Converter)(nil)

// Converter is a mock implementation of docent.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
