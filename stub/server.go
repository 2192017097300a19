// Package stub is a stand-in for the dish search service, good enough to seed against locally.
package stub

import (
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type addRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SearchResult mirrors the search service response.
type SearchResult struct {
	Count  int    `json:"count"`
	Dishes []Dish `json:"dishes"`
}

// NewRouter wires the dish endpoints. With failureRate > 0 that share of
// POST requests is answered with 500 before touching the store.
func NewRouter(st *Store, failureRate float64, logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dishes": st.Len()})
	})

	api := r.Group("/api/v1")
	api.POST("/dishes", func(c *gin.Context) {
		if failureRate > 0 && rand.Float64() < failureRate {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
			return
		}
		var req addRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		d := st.Add(req.Name, req.Category)
		logger.Debugf("indexed dish %d %q request=%s", d.ID, d.Name, c.GetHeader("X-Request-ID"))
		c.JSON(http.StatusOK, d)
	})

	api.GET("/dishes", func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
			return
		}
		logger.Infof("Query : %s", query)
		dishes := st.Search(query)
		c.JSON(http.StatusOK, SearchResult{Count: len(dishes), Dishes: dishes})
	})

	return r
}
