package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-restaurant/api"
	"go-restaurant/models"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) List(ctx context.Context) ([]models.Food, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, food models.Food) (models.Food, error) {
	args := m.Called(ctx, food)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	args := m.Called(ctx, id, food)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *MockRemote) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

var (
	ctx       = context.Background()
	serverErr = &api.ServerError{Method: "PUT", URL: "/foods/3", StatusCode: http.StatusInternalServerError}
	netErr    = &api.NetworkError{Method: "POST", URL: "/foods", Err: errors.New("connection refused")}
)

func loaded(t *testing.T, remote *MockRemote, foods ...models.Food) *Dashboard {
	remote.On("List", ctx).Return(foods, nil).Once()
	d := New(remote)
	require.NoError(t, d.LoadAll(ctx))
	return d
}

func TestLoadAll(t *testing.T) {
	remote := new(MockRemote)
	foods := []models.Food{{ID: 1, Available: true}, {ID: 2, Available: false}}

	d := loaded(t, remote, foods...)

	assert.Equal(t, foods, d.Items())
	cards := d.Cards()
	require.Len(t, cards, 2)
	assert.True(t, cards[0].Available())
	assert.False(t, cards[1].Available())
	remote.AssertExpectations(t)
}

func TestLoadAllFailureKeepsList(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1})
	remote.On("List", ctx).Return([]models.Food(nil), netErr).Once()
	rec := &recorder{}
	d.notifier = rec

	err := d.LoadAll(ctx)

	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, []models.Food{{ID: 1}}, d.Items())
	require.Len(t, rec.got, 1)
	assert.Equal(t, Notification{Op: OpLoad, Kind: KindNetwork, Err: netErr}, rec.got[0])
}

func TestCreateForcesAvailableAndAppends(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1, Name: "first"})
	candidate := models.Food{Name: "Ao molho", Description: "d", Price: 19.9, Image: "img", Available: false}
	sent := candidate
	sent.Available = true
	created := sent
	created.ID = 7
	remote.On("Create", ctx, sent).Return(created, nil)

	got, err := d.Create(ctx, candidate)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	items := d.Items()
	require.Len(t, items, 2)
	assert.Equal(t, created, items[1])
	n := 0
	for _, f := range items {
		if f.ID == 7 {
			n++
			assert.True(t, f.Available)
		}
	}
	assert.Equal(t, 1, n)
	remote.AssertExpectations(t)
}

func TestCreateFailureLeavesList(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1})
	var logs bytes.Buffer
	d.logger = log.New(&logs, "", 0)
	remote.On("Create", ctx, mock.Anything).Return(models.Food{}, netErr)

	_, err := d.Create(ctx, models.Food{Name: "x"})

	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, []models.Food{{ID: 1}}, d.Items())
	assert.Contains(t, logs.String(), "create: ")
}

func TestUpdateMergesAndReplaces(t *testing.T) {
	remote := new(MockRemote)
	editing := models.Food{ID: 3, Name: "X", Description: "d", Price: 10, Image: "img", Available: true}
	d := loaded(t, remote, models.Food{ID: 1}, editing)
	merged := editing
	merged.Price = 12.5
	response := merged
	response.Description = "normalised by server"
	remote.On("Update", ctx, int64(3), merged).Return(response, nil)

	d.OpenEditModal(editing)
	price := 12.5
	got, err := d.Update(ctx, models.FoodPatch{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, response, got)
	assert.Equal(t, []models.Food{{ID: 1}, response}, d.Items())
	remote.AssertExpectations(t)
}

func TestUpdateMismatchLeavesList(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1})
	remote.On("Update", ctx, int64(3), mock.Anything).Return(models.Food{ID: 4}, nil)
	rec := &recorder{}
	d.notifier = rec

	d.OpenEditModal(models.Food{ID: 3})
	_, err := d.Update(ctx, models.FoodPatch{})

	var me *MismatchError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, int64(4), me.ID)
	assert.Equal(t, []models.Food{{ID: 1}}, d.Items())
	require.Len(t, rec.got, 1)
	assert.Equal(t, KindMismatch, rec.got[0].Kind)
}

func TestUpdateFailureLeavesList(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 3, Name: "X"})
	remote.On("Update", ctx, int64(3), mock.Anything).Return(models.Food{}, serverErr)
	rec := &recorder{}
	d.notifier = rec

	d.OpenEditModal(models.Food{ID: 3, Name: "X"})
	name := "Y"
	_, err := d.Update(ctx, models.FoodPatch{Name: &name})

	assert.ErrorIs(t, err, serverErr)
	assert.Equal(t, []models.Food{{ID: 3, Name: "X"}}, d.Items())
	assert.Equal(t, KindServer, rec.got[0].Kind)
}

func TestUpdateWithoutEditing(t *testing.T) {
	remote := new(MockRemote)
	d := New(remote)

	_, err := d.Update(ctx, models.FoodPatch{})

	assert.ErrorIs(t, err, ErrNoItemBeingEdited)
	remote.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRemovesEvenWhenRequestFails(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 4}, models.Food{ID: 5}, models.Food{ID: 6})
	remote.On("Delete", ctx, int64(5)).Return(serverErr)
	rec := &recorder{}
	d.notifier = rec

	err := d.Delete(ctx, 5)

	assert.ErrorIs(t, err, serverErr)
	assert.Equal(t, []models.Food{{ID: 4}, {ID: 6}}, d.Items())
	require.Len(t, rec.got, 1)
	assert.Equal(t, OpDelete, rec.got[0].Op)
}

func TestDeleteTwice(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 5})
	remote.On("Delete", ctx, int64(5)).Return(nil).Once()
	remote.On("Delete", ctx, int64(5)).Return(&api.ServerError{StatusCode: http.StatusNotFound}).Once()

	assert.NoError(t, d.Delete(ctx, 5))
	assert.Error(t, d.Delete(ctx, 5))
	assert.Empty(t, d.Items())
	remote.AssertNumberOfCalls(t, "Delete", 2)
}

func TestModals(t *testing.T) {
	d := New(new(MockRemote))
	assert.False(t, d.CreationModalOpen())
	assert.False(t, d.EditModalOpen())
	assert.Zero(t, d.ItemBeingEdited())

	d.OpenCreationModal()
	assert.True(t, d.CreationModalOpen())
	d.ToggleCreationModal()
	assert.False(t, d.CreationModalOpen())

	food := models.Food{ID: 2, Name: "Veggie"}
	d.OpenEditModal(food)
	assert.True(t, d.EditModalOpen())
	assert.Equal(t, food, d.ItemBeingEdited())
	d.ToggleEditModal()
	assert.False(t, d.EditModalOpen())
	assert.Equal(t, food, d.ItemBeingEdited())
}

func TestRenderIssuesNoRequests(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1, Available: true}, models.Food{ID: 2})

	first := d.Cards()
	second := d.Cards()

	assert.Equal(t, first, second)
	remote.AssertNumberOfCalls(t, "List", 1)
	remote.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardsKeepSnapshotAcrossReload(t *testing.T) {
	remote := new(MockRemote)
	d := loaded(t, remote, models.Food{ID: 1, Available: true}, models.Food{ID: 2})
	cards := d.Cards()
	require.Len(t, cards, 2)

	remote.On("List", ctx).Return([]models.Food{{ID: 1, Available: false, Name: "renamed"}, {ID: 3, Available: true}}, nil).Once()
	require.NoError(t, d.LoadAll(ctx))
	reloaded := d.Cards()

	require.Len(t, reloaded, 2)
	assert.Same(t, cards[0], reloaded[0])
	assert.Equal(t, "renamed", reloaded[0].Food().Name)
	assert.True(t, reloaded[0].Available(), "mounted card keeps its own flag")
	assert.True(t, reloaded[1].Available())
	assert.Equal(t, int64(3), reloaded[1].Food().ID)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindNetwork, classify(netErr))
	assert.Equal(t, KindServer, classify(serverErr))
	assert.Equal(t, KindMismatch, classify(&MismatchError{ID: 1}))
	assert.Equal(t, KindOther, classify(ErrNoItemBeingEdited))
	assert.Equal(t, "server", KindServer.String())
}
