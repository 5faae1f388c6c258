package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-restaurant/models"
	"go-restaurant/store"
)

// FoodController serves the foods collection.
type FoodController struct {
	Store  store.FoodStore
	Logger *log.Logger
}

func NewFoodController(s store.FoodStore, logger *log.Logger) *FoodController {
	if logger == nil {
		logger = log.Default()
	}
	return &FoodController{Store: s, Logger: logger}
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *FoodController) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.Logger.Printf("encoding response: %v", err)
	}
}

func (c *FoodController) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		c.Logger.Printf("internal error: %v", err)
	}
	c.writeJSON(w, status, errorBody{Message: err.Error()})
}

func (c *FoodController) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.writeError(w, http.StatusNotFound, err)
		return
	}
	c.writeError(w, http.StatusInternalServerError, err)
}

func foodID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.New("food id must be an integer")
	}
	return id, nil
}

func (c *FoodController) GetAllFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := c.Store.List(r.Context())
	if err != nil {
		c.storeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, foods)
}

func (c *FoodController) GetFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, err)
		return
	}
	food, err := c.Store.Get(r.Context(), id)
	if err != nil {
		c.storeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, food)
}

func (c *FoodController) CreateFood(w http.ResponseWriter, r *http.Request) {
	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		c.writeError(w, http.StatusBadRequest, err)
		return
	}
	created, err := c.Store.Create(r.Context(), food)
	if err != nil {
		c.storeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, created)
}

// UpdateFood replaces every field of the food; the id in the path wins over
// any id in the body.
func (c *FoodController) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, err)
		return
	}
	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		c.writeError(w, http.StatusBadRequest, err)
		return
	}
	updated, err := c.Store.Update(r.Context(), id, food)
	if err != nil {
		c.storeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, updated)
}

func (c *FoodController) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := c.Store.Delete(r.Context(), id); err != nil {
		c.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
