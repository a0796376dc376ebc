package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	paths := doc["paths"].(map[string]interface{})
	for _, p := range []string{"/api/students", "/api/student-krs", "/api/student-khs", "/api/offered-course", "/api/akm", "/api/token/login"} {
		assert.Contains(t, paths, p)
	}
}
