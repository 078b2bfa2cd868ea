package stock

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opsboard/connection"
	"opsboard/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// An update to an id the mirror has never seen must 404 instead of merging a
// partial document into place.
func TestUpdateStockTypeUnknownIDReturnsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := &connection.App{Store: store.New()}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "no-such-type"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/stock/types/no-such-type",
		strings.NewReader(`{"name": "Cables", "description": "never created"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	UpdateStockType(c, app)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Stock type not found")
}
