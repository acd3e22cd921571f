package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindTestStruct struct {
	Document string `json:"document" binding:"required"`
	Count    int    `json:"count"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    bindTestStruct
		expectError bool
	}{
		{
			name:     "Nested Structure",
			key:      "record",
			body:     `{"record": {"document": "Alice", "count": 30}}`,
			expected: bindTestStruct{Document: "Alice", Count: 30},
		},
		{
			name:     "Flat Structure",
			key:      "record",
			body:     `{"document": "Bob", "count": 25}`,
			expected: bindTestStruct{Document: "Bob", Count: 25},
		},
		{
			name:     "Nested Structure with Missing Key Fallback",
			key:      "record",
			body:     `{"other": "value", "document": "Charlie", "count": 40}`,
			expected: bindTestStruct{Document: "Charlie", Count: 40},
		},
		{
			name:        "Invalid JSON Type",
			key:         "record",
			body:        `{"document": "Eve", "count": "invalid"}`,
			expectError: true,
		},
		{
			name:        "Nested but Invalid Content",
			key:         "record",
			body:        `{"record": {"document": "Frank", "count": "invalid"}}`,
			expectError: true,
		},
		{
			name:        "Nested Key Present but Invalid Type",
			key:         "record",
			body:        `{"record": "some string"}`,
			expectError: true,
		},
		{
			name:        "Required Field Missing in Nested Body",
			key:         "record",
			body:        `{"record": {"count": 5}}`,
			expectError: true,
		},
		{
			name:        "Required Field Missing in Flat Body",
			key:         "record",
			body:        `{"count": 5}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result bindTestStruct
			err := BindNestedOrFlat(c, tt.key, &result)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
