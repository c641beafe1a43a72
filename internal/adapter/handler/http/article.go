package http

import (
	"net/http"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	Handler
	service port.ArticleService
}

func NewArticleHandler(service port.ArticleService, logger *zap.Logger) (*ArticleHandler, error) {
	return &ArticleHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type articleResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func newArticleResponses(list []*domain.Article) []articleResponse {
	result := make([]articleResponse, 0, len(list))
	for _, a := range list {
		result = append(result, articleResponse{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return result
}

// ListArticles godoc
//
//	@Summary	List all articles
//	@Tags		articles
//	@Produce	json
//	@Success	200	{array}		articleResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/articles [get]
func (ah *ArticleHandler) ListArticles(ctx *gin.Context) {
	list, err := ah.service.ListArticles(ctx.Request.Context())
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newArticleResponses(list))
}

type idsQuery struct {
	IDs []int64 `form:"ids"`
}

// ListArticlesByIDs godoc
//
//	@Summary	List the existing articles among the given ids
//	@Tags		articles
//	@Produce	json
//	@Param		ids	query		[]int	true	"Article ids"	collectionFormat(multi)
//	@Success	200	{array}		articleResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/articles/getByIds [get]
func (ah *ArticleHandler) ListArticlesByIDs(ctx *gin.Context) {
	query := idsQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ah.handleBindError(ctx, err)
		return
	}

	list, err := ah.service.ListArticlesByIDs(ctx.Request.Context(), domain.MultipleIDRequest{IDs: query.IDs})
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newArticleResponses(list))
}

type createArticleRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateArticles godoc
//
//	@Summary	Create articles
//	@Tags		articles
//	@Accept		json
//	@Produce	json
//	@Param		articles	body		[]createArticleRequest	true	"Articles to create"
//	@Success	201			{array}		articleResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	500			{object}	errorResponse
//	@Router		/articles [post]
func (ah *ArticleHandler) CreateArticles(ctx *gin.Context) {
	reqs := make([]createArticleRequest, 0)
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		ah.handleBindError(ctx, err)
		return
	}

	articles := make([]domain.CreateArticleRequest, 0, len(reqs))
	for _, r := range reqs {
		price, err := decimal.NewFromFloat64(r.Price)
		if err != nil {
			ah.handleBindError(ctx, err)
			return
		}
		articles = append(articles, domain.CreateArticleRequest{Name: r.Name, Price: price})
	}

	created, err := ah.service.CreateArticles(ctx.Request.Context(), articles)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	if len(created) == 0 {
		ah.handleError(ctx, domain.ErrEmptyArticleList)
		return
	}

	ah.handleSuccessWithStatus(ctx, newArticleResponses(created), http.StatusCreated)
}

// CreateArticle godoc
//
//	@Summary	Create a single article
//	@Tags		articles
//	@Accept		json
//	@Produce	json
//	@Param		article	body		createArticleRequest	true	"Article to create"
//	@Success	201		{object}	articleResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Router		/articles/single [post]
func (ah *ArticleHandler) CreateArticle(ctx *gin.Context) {
	req := createArticleRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleBindError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ah.handleBindError(ctx, err)
		return
	}

	created, err := ah.service.CreateArticle(ctx.Request.Context(),
		domain.CreateArticleRequest{Name: req.Name, Price: price})
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	if created == nil {
		ah.handleError(ctx, domain.ErrEmptyArticleList)
		return
	}

	ah.handleSuccessWithStatus(ctx, articleResponse{
		ID:    created.ID,
		Name:  created.Name,
		Price: created.Price,
	}, http.StatusCreated)
}
