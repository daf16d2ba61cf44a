package handler

import (
	"net/http"

	"github.com/booklyhq/support-be/service"
	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
)

type KnowledgeHandler struct {
	knowledgeService service.KnowledgeService
}

func NewKnowledgeHandler(knowledgeService service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
	}
}

func (h *KnowledgeHandler) HandleCreate(c *gin.Context) {
	var article types.KnowledgeArticle
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.knowledgeService.CreateArticle(c.Request.Context(), &article); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.DataResponse{
		Success: true,
		Data:    article,
	})
}

func (h *KnowledgeHandler) HandleSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Search query 'q' is required",
		})
		return
	}

	articles, err := h.knowledgeService.SearchArticles(
		c.Request.Context(), q, c.Query("category"), parseInt(c.Query("limit"), 10))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    articles,
	})
}

func (h *KnowledgeHandler) HandleList(c *gin.Context) {
	articles, err := h.knowledgeService.ListArticles(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    articles,
	})
}

func (h *KnowledgeHandler) HandleGet(c *gin.Context) {
	article, err := h.knowledgeService.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    article,
	})
}

func (h *KnowledgeHandler) HandleUpdate(c *gin.Context) {
	var update types.KnowledgeArticle
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	article, err := h.knowledgeService.UpdateArticle(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    article,
	})
}

func (h *KnowledgeHandler) HandleDelete(c *gin.Context) {
	article, err := h.knowledgeService.DeleteArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    article,
	})
}

func (h *KnowledgeHandler) HandleHelpful(c *gin.Context) {
	article, err := h.knowledgeService.MarkHelpful(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    article,
	})
}
