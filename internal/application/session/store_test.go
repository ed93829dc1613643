package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/identity"
)

// MockPersistence is a mock implementation of Persistence
type MockPersistence struct {
	mock.Mock
}

func (m *MockPersistence) Load() (identity.Credential, error) {
	args := m.Called()
	return args.Get(0).(identity.Credential), args.Error(1)
}

func (m *MockPersistence) Save(cred identity.Credential) error {
	args := m.Called(cred)
	return args.Error(0)
}

func (m *MockPersistence) Delete() error {
	args := m.Called()
	return args.Error(0)
}

// recordingObserver captures session transitions in order.
type recordingObserver struct {
	logins  []identity.Credential
	logouts int
}

func (o *recordingObserver) OnLogin(cred identity.Credential) { o.logins = append(o.logins, cred) }
func (o *recordingObserver) OnLogout()                        { o.logouts++ }

func TestStore_SetCredential_PersistsBeforeNotifying(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	var savedBeforeNotify bool
	persist.On("Save", mock.AnythingOfType("identity.Credential")).Run(func(mock.Arguments) {
		savedBeforeNotify = len(obs.logins) == 0
	}).Return(nil)

	require.NoError(t, store.SetCredential("tok", "alice", identity.RoleAdmin))

	assert.True(t, savedBeforeNotify)
	require.Len(t, obs.logins, 1)
	assert.Equal(t, "tok", obs.logins[0].Token)
	assert.Equal(t, "alice", store.Credential().Username)
	persist.AssertExpectations(t)
}

func TestStore_SetCredential_SaveFailureLeavesStateUntouched(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	persist.On("Save", mock.AnythingOfType("identity.Credential")).Return(errors.New("disk full"))

	err := store.SetCredential("tok", "alice", identity.RoleUser)

	assert.Error(t, err)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, obs.logins)
}

func TestStore_Restore_FiresLoginWhenTokenHeld(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	cred := identity.Credential{Token: "saved", Username: "bob", Role: identity.RoleStaff}
	persist.On("Load").Return(cred, nil)

	require.NoError(t, store.Restore())

	require.Len(t, obs.logins, 1)
	assert.Equal(t, cred, obs.logins[0])
	assert.Equal(t, "saved", store.Token())
}

func TestStore_Restore_NoTokenFiresNothing(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	persist.On("Load").Return(identity.Credential{}, nil)

	require.NoError(t, store.Restore())

	assert.Empty(t, obs.logins)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Clear_FiresLogoutOnce(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	persist.On("Save", mock.AnythingOfType("identity.Credential")).Return(nil)
	persist.On("Delete").Return(nil)

	require.NoError(t, store.SetCredential("tok", "alice", identity.RoleUser))
	store.Clear()

	assert.Equal(t, 1, obs.logouts)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
}

func TestStore_Clear_WhenLoggedOutIsNoOp(t *testing.T) {
	persist := new(MockPersistence)
	store := NewStore(persist, zap.NewNop())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	persist.On("Delete").Return(nil)

	store.Clear()
	store.Clear()

	assert.Zero(t, obs.logouts)
}

func TestStore_Token_EmptyWhenLoggedOut(t *testing.T) {
	store := NewStore(new(MockPersistence), zap.NewNop())
	assert.Empty(t, store.Token())
}
