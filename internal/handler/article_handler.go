package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"article-api/internal/domain"
	"article-api/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	CoverImage   *string  `json:"cover_image,omitempty"`
	Images       []string `json:"images"`
	CategoryID   *int64   `json:"category_id,omitempty"`
	CategoryName *string  `json:"category_name,omitempty"`
	ViewCount    int      `json:"view_count"`
	Status       string   `json:"status"`
	ArticleType  string   `json:"article_type,omitempty"`
	Tag          string   `json:"tag,omitempty"`
	CreateTime   string   `json:"create_time"`
	UpdateTime   string   `json:"update_time"`
}

// ArticlePageResponse represents one page of articles in the API response.
type ArticlePageResponse struct {
	Content       []ArticleResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
	HasNext       bool              `json:"has_next"`
	HasPrevious   bool              `json:"has_previous"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	images := a.Images
	if images == nil {
		images = []string{}
	}
	return ArticleResponse{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		CoverImage:   a.CoverImage,
		Images:       images,
		CategoryID:   a.CategoryID,
		CategoryName: a.CategoryName,
		ViewCount:    a.ViewCount,
		Status:       a.Status,
		ArticleType:  a.ArticleType,
		Tag:          a.Tag,
		CreateTime:   a.CreatedAt.Format(TimeFormat),
		UpdateTime:   a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticlePageResponse(page domain.PageResult[domain.Article]) ArticlePageResponse {
	content := make([]ArticleResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, toArticleResponse(&page.Content[i]))
	}
	return ArticlePageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		HasNext:       page.HasNext,
		HasPrevious:   page.HasPrevious,
	}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	var filter domain.ArticleFilter

	if v, ok, err := queryInt(c, "page"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	} else if ok {
		filter.Page = &v
	}

	if v, ok, err := queryInt(c, "size"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
		return
	} else if ok {
		filter.Size = &v
	}

	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId must be an integer"})
			return
		}
		filter.CategoryID = &id
	}

	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("articleType"); v != "" {
		filter.ArticleType = &v
	}
	if v := c.Query("tag"); v != "" {
		filter.Tag = &v
	}

	page, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticlePageResponse(page))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input domain.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// pathID parses the :id path parameter, writing a 400 response on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. The middle return
// reports whether the parameter was present.
func queryInt(c *gin.Context, name string) (int, bool, error) {
	v := c.Query(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
