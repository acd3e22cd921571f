package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindNestedOrFlat binds the request body to obj and runs the binding
// validators. It first checks whether the body nests the payload under
// the given key (e.g. {"financial_history": {...}}) and binds that
// object if so; otherwise it binds the whole body. Kept for
// compatibility with clients that send either shape.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	// Restore body for future binding or subsequent reads
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	// 1. Try nested structure { "key": { ... } }
	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			if err := json.Unmarshal(val, obj); err != nil {
				return err
			}
			return binding.Validator.ValidateStruct(obj)
		}
	}

	// 2. Fall back to the flat structure { ... }
	if err := json.Unmarshal(bodyBytes, obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
