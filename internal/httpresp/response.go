// Package httpresp holds the success-side JSON envelopes. Collections
// always travel with their count so the front end can render totals
// without a second request; errors go through httperr instead.
package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// List wraps a slice in the standard collection envelope.
func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
