package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port/mock"
	"github.com/MikeRez0/checkout/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prepareOrderMocks func(repo *mock.MockOrderRepository, articles *mock.MockArticleService)

var (
	coffee = &domain.Article{ID: 1, Name: "Coffee", Price: decimal.MustParse("3.99")}
	tea    = &domain.Article{ID: 2, Name: "Tea", Price: decimal.MustParse("4.99")}
)

func TestOrderService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	v, logger := testDeps(t)

	type createOrderTest struct {
		name      string
		req       domain.CreateOrderRequest
		mock      prepareOrderMocks
		expError  error
		expResult *domain.Order
	}

	tests := []createOrderTest{
		{
			name: "Create good",
			req: domain.CreateOrderRequest{Lines: []domain.OrderLineRequest{
				{ArticleID: 1, Quantity: 2},
				{ArticleID: 2, Quantity: 3},
			}},
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				articles.EXPECT().ListArticlesByIDs(gomock.Any(), domain.MultipleIDRequest{IDs: []int64{1, 2}}).
					Return([]*domain.Article{coffee, tea}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), &domain.Order{
					Status: domain.OrderStatusOpen,
					Lines: []domain.OrderLine{
						{ArticleID: 1, Quantity: 2},
						{ArticleID: 2, Quantity: 3},
					},
				}).DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					o.ID = 10
					for i := range o.Lines {
						o.Lines[i].OrderID = 10
					}
					return o, nil
				})
			},
			expResult: &domain.Order{
				ID:     10,
				Status: domain.OrderStatusOpen,
				Lines: []domain.OrderLine{
					{OrderID: 10, ArticleID: 1, Quantity: 2},
					{OrderID: 10, ArticleID: 2, Quantity: 3},
				},
			},
		},
		{
			name: "Unknown articles are dropped, last quantity wins",
			req: domain.CreateOrderRequest{Lines: []domain.OrderLineRequest{
				{ArticleID: 1, Quantity: 2},
				{ArticleID: 99, Quantity: 1},
				{ArticleID: 1, Quantity: 5},
			}},
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				articles.EXPECT().ListArticlesByIDs(gomock.Any(), domain.MultipleIDRequest{IDs: []int64{1, 99}}).
					Return([]*domain.Article{coffee}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), &domain.Order{
					Status: domain.OrderStatusOpen,
					Lines:  []domain.OrderLine{{ArticleID: 1, Quantity: 5}},
				}).Return(&domain.Order{
					ID:     11,
					Status: domain.OrderStatusOpen,
					Lines:  []domain.OrderLine{{OrderID: 11, ArticleID: 1, Quantity: 5}},
				}, nil)
			},
			expResult: &domain.Order{
				ID:     11,
				Status: domain.OrderStatusOpen,
				Lines:  []domain.OrderLine{{OrderID: 11, ArticleID: 1, Quantity: 5}},
			},
		},
		{
			name: "No known articles",
			req: domain.CreateOrderRequest{Lines: []domain.OrderLineRequest{
				{ArticleID: 98, Quantity: 1},
				{ArticleID: 99, Quantity: 1},
			}},
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				articles.EXPECT().ListArticlesByIDs(gomock.Any(), gomock.Any()).
					Return([]*domain.Article{}, nil)
			},
		},
		{
			name:     "No lines",
			req:      domain.CreateOrderRequest{},
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expError: domain.ErrValidation,
		},
		{
			name: "Negative quantity",
			req: domain.CreateOrderRequest{Lines: []domain.OrderLineRequest{
				{ArticleID: 1, Quantity: -1},
			}},
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockOrderRepository(mockCtrl)
			articles := mock.NewMockArticleService(mockCtrl)
			test.mock(repo, articles)

			s, err := service.NewOrderService(repo, articles, v, logger)
			assert.NoError(t, err)

			result, err := s.CreateOrder(context.Background(), test.req)

			assert.Equal(t, test.expResult, result)
			if test.expError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expError)
			}
		})
	}
}

func TestOrderService_CreateOrderCanceled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	v, logger := testDeps(t)

	ctx, cancel := context.WithCancel(context.Background())

	repo := mock.NewMockOrderRepository(mockCtrl)
	articles := mock.NewMockArticleService(mockCtrl)
	articles.EXPECT().ListArticlesByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.MultipleIDRequest) ([]*domain.Article, error) {
			cancel()
			return []*domain.Article{coffee}, nil
		})

	s, err := service.NewOrderService(repo, articles, v, logger)
	require.NoError(t, err)

	result, err := s.CreateOrder(ctx, domain.CreateOrderRequest{Lines: []domain.OrderLineRequest{
		{ArticleID: 1, Quantity: 1},
	}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestOrderService_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	v, logger := testDeps(t)

	errDB := errors.New("db is down")

	type getOrderTest struct {
		name     string
		id       int64
		mock     prepareOrderMocks
		expError error
		expNil   bool
		expTotal string
		expLines int
	}

	tests := []getOrderTest{
		{
			name: "Get good",
			id:   10,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(10)).Return(&domain.Order{
					ID:     10,
					Status: domain.OrderStatusActive,
					Lines: []domain.OrderLine{
						{OrderID: 10, ArticleID: 1, Quantity: 2},
						{OrderID: 10, ArticleID: 2, Quantity: 3},
					},
				}, nil)
				articles.EXPECT().ListArticlesByIDs(gomock.Any(), domain.MultipleIDRequest{IDs: []int64{1, 2}}).
					Return([]*domain.Article{coffee, tea}, nil)
			},
			expTotal: "22.95",
			expLines: 2,
		},
		{
			name: "Get without lines",
			id:   11,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(11)).
					Return(&domain.Order{ID: 11, Status: domain.OrderStatusOpen}, nil)
			},
			expTotal: "0",
			expLines: 0,
		},
		{
			name: "Get not found",
			id:   12,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(12)).Return(nil, domain.ErrDataNotFound)
			},
			expNil: true,
		},
		{
			name: "Get db error",
			id:   13,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(13)).Return(nil, errDB)
			},
			expNil:   true,
			expError: errDB,
		},
		{
			name:     "Get bad id",
			id:       0,
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expNil:   true,
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockOrderRepository(mockCtrl)
			articles := mock.NewMockArticleService(mockCtrl)
			test.mock(repo, articles)

			s, err := service.NewOrderService(repo, articles, v, logger)
			assert.NoError(t, err)

			result, err := s.GetOrder(context.Background(), domain.IDRequest{ID: test.id})

			if test.expError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expError)
			}
			if test.expNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, test.id, result.ID)
			assert.Len(t, result.Lines, test.expLines)
			assert.NotNil(t, result.Lines)
			assert.Zero(t, decimal.MustParse(test.expTotal).Cmp(result.TotalCost),
				"got %s, want %s", result.TotalCost, test.expTotal)
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	v, logger := testDeps(t)

	type changeStatusTest struct {
		name      string
		id        int64
		status    domain.OrderStatus
		mock      prepareOrderMocks
		expError  error
		expResult bool
	}

	tests := []changeStatusTest{
		{
			name:   "Complete back to open",
			id:     10,
			status: domain.OrderStatusOpen,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(10)).
					Return(&domain.Order{ID: 10, Status: domain.OrderStatusComplete}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), &domain.Order{ID: 10, Status: domain.OrderStatusOpen}).
					Return(&domain.Order{ID: 10, Status: domain.OrderStatusOpen}, nil)
			},
			expResult: true,
		},
		{
			name:   "Same status",
			id:     10,
			status: domain.OrderStatusCanceled,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(10)).
					Return(&domain.Order{ID: 10, Status: domain.OrderStatusCanceled}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					Return(&domain.Order{ID: 10, Status: domain.OrderStatusCanceled}, nil)
			},
			expResult: true,
		},
		{
			name:   "Not found",
			id:     12,
			status: domain.OrderStatusActive,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(12)).Return(nil, domain.ErrDataNotFound)
			},
		},
		{
			name:   "Deleted in between",
			id:     13,
			status: domain.OrderStatusActive,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().ReadOrder(gomock.Any(), int64(13)).
					Return(&domain.Order{ID: 13, Status: domain.OrderStatusOpen}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNoUpdatedData)
			},
		},
		{
			name:     "Bad status",
			id:       10,
			status:   "Shipped",
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expError: domain.ErrValidation,
		},
		{
			name:     "Bad id",
			id:       -1,
			status:   domain.OrderStatusOpen,
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockOrderRepository(mockCtrl)
			articles := mock.NewMockArticleService(mockCtrl)
			test.mock(repo, articles)

			s, err := service.NewOrderService(repo, articles, v, logger)
			assert.NoError(t, err)

			result, err := s.ChangeStatus(context.Background(), domain.IDRequest{ID: test.id}, test.status)

			assert.Equal(t, test.expResult, result)
			if test.expError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expError)
			}
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	v, logger := testDeps(t)

	errDB := errors.New("db is down")

	type deleteOrderTest struct {
		name      string
		id        int64
		mock      prepareOrderMocks
		expError  error
		expResult bool
	}

	tests := []deleteOrderTest{
		{
			name: "Delete good",
			id:   10,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().DeleteOrder(gomock.Any(), int64(10)).Return(nil)
			},
			expResult: true,
		},
		{
			name: "Delete not found",
			id:   12,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().DeleteOrder(gomock.Any(), int64(12)).Return(domain.ErrDataNotFound)
			},
		},
		{
			name: "Delete db error",
			id:   13,
			mock: func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {
				repo.EXPECT().DeleteOrder(gomock.Any(), int64(13)).Return(errDB)
			},
			expError: errDB,
		},
		{
			name:     "Delete bad id",
			id:       0,
			mock:     func(repo *mock.MockOrderRepository, articles *mock.MockArticleService) {},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockOrderRepository(mockCtrl)
			articles := mock.NewMockArticleService(mockCtrl)
			test.mock(repo, articles)

			s, err := service.NewOrderService(repo, articles, v, logger)
			assert.NoError(t, err)

			result, err := s.DeleteOrder(context.Background(), domain.IDRequest{ID: test.id})

			assert.Equal(t, test.expResult, result)
			if test.expError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expError)
			}
		})
	}
}
