package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-restaurant/controllers"
	"go-restaurant/models"
	"go-restaurant/routes"
	"go-restaurant/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context) ([]models.Food, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id int64) (models.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	args := m.Called(ctx, food)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	args := m.Called(ctx, id, food)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newRouter(s store.FoodStore) *mux.Router {
	quiet := log.New(io.Discard, "", 0)
	return routes.SetupRoutes(controllers.NewFoodController(s, quiet), quiet)
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "error unmarshalling response")
	return body["message"]
}

func TestCreateFood(t *testing.T) {
	mockStore := new(MockStore)
	food := models.Food{
		Name:        "Ao molho",
		Description: "Macarrão ao molho branco",
		Price:       19.9,
		Image:       "https://example.com/ao_molho.png",
		Available:   true,
	}
	created := food
	created.ID = 7
	mockStore.On("Create", mock.Anything, food).Return(created, nil)

	payload, _ := json.Marshal(food)
	rr := serve(newRouter(mockStore), "POST", "/foods", string(payload))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var got models.Food
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got), "error unmarshalling response")
	assert.Equal(t, created, got)
	mockStore.AssertExpectations(t)
}

func TestCreateFoodMalformed(t *testing.T) {
	mockStore := new(MockStore)

	rr := serve(newRouter(mockStore), "POST", "/foods", "{name:")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotEmpty(t, message(t, rr))
	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetAllFoods(t *testing.T) {
	mockStore := new(MockStore)
	foods := []models.Food{{ID: 1, Name: "a", Available: true}, {ID: 2, Name: "b"}}
	mockStore.On("List", mock.Anything).Return(foods, nil)

	rr := serve(newRouter(mockStore), "GET", "/foods", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Food
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, foods, got)
}

func TestGetAllFoodsStoreFailure(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("List", mock.Anything).Return([]models.Food(nil), errors.New("mongo unavailable"))

	rr := serve(newRouter(mockStore), "GET", "/foods", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "mongo unavailable", message(t, rr))
}

func TestGetFood(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Get", mock.Anything, int64(3)).Return(models.Food{ID: 3, Name: "X"}, nil)
	mockStore.On("Get", mock.Anything, int64(4)).Return(models.Food{}, store.ErrNotFound)
	router := newRouter(mockStore)

	rr := serve(router, "GET", "/foods/3", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, "GET", "/foods/4", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, store.ErrNotFound.Error(), message(t, rr))

	rr = serve(router, "GET", "/foods/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateFood(t *testing.T) {
	mockStore := new(MockStore)
	updated := models.Food{ID: 3, Name: "X", Price: 12.5, Available: false}
	mockStore.On("Update", mock.Anything, int64(3), updated).Return(updated, nil)

	rr := serve(newRouter(mockStore), "PUT", "/foods/3", `{"id":3,"name":"X","price":12.5,"available":false}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Food
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, updated, got)
	mockStore.AssertExpectations(t)
}

func TestUpdateFoodNotFound(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Update", mock.Anything, int64(9), mock.Anything).Return(models.Food{}, store.ErrNotFound)

	rr := serve(newRouter(mockStore), "PUT", "/foods/9", `{"name":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteFood(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Delete", mock.Anything, int64(5)).Return(nil)
	mockStore.On("Delete", mock.Anything, int64(6)).Return(store.ErrNotFound)
	router := newRouter(mockStore)

	rr := serve(router, "DELETE", "/foods/5", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(router, "DELETE", "/foods/6", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockStore.AssertExpectations(t)
}

func TestRoutesStampRequestID(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("List", mock.Anything).Return([]models.Food{}, nil)

	rr := serve(newRouter(mockStore), "GET", "/foods", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
