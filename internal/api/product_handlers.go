package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) listProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handlers) getProduct(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("category"), c.Param("id"))
	if err != nil {
		h.fail(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, p)
}
