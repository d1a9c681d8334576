package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedStore() *Store {
	return NewStore(map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Practice soccer skills and play friendly matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{},
		},
	})
}

func TestStore_List_Snapshot(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	out := store.List()
	req.Len(out, 2)
	req.Equal([]string{"michael@mergington.edu", "daniel@mergington.edu"}, out["Chess Club"].Participants)

	// Mutating the snapshot must not leak back into the store
	chess := out["Chess Club"]
	chess.Participants[0] = "tampered@mergington.edu"
	req.Equal("michael@mergington.edu", store.List()["Chess Club"].Participants[0])
}

func TestStore_List_EmptyRosterMarshalsAsArray(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	// Soccer Club has no participants yet; its roster must still be a
	// JSON array, never null.
	b, err := json.Marshal(store.List()["Soccer Club"])
	req.NoError(err)
	req.Contains(string(b), `"participants":[]`)
}

func TestStore_Len(t *testing.T) {
	require.Equal(t, 2, seedStore().Len())
}

func TestStore_Signup_AppendsInOrder(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	req.NoError(store.Signup("Soccer Club", "ava@mergington.edu"))
	req.NoError(store.Signup("Soccer Club", "liam@mergington.edu"))
	req.NoError(store.Signup("Soccer Club", "mia@mergington.edu"))

	got := store.List()["Soccer Club"].Participants
	req.Equal([]string{"ava@mergington.edu", "liam@mergington.edu", "mia@mergington.edu"}, got)
}

func TestStore_Signup_Duplicate_Conflict(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	err := store.Signup("Chess Club", "michael@mergington.edu")
	req.Error(err)
	req.Equal(KindConflict, KindOf(err))

	// Roster unchanged
	req.Len(store.List()["Chess Club"].Participants, 2)
}

func TestStore_Signup_UnknownActivity_NotFound(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	for _, email := range []string{"someone@mergington.edu", "", "not-an-email"} {
		err := store.Signup("Knitting Circle", email)
		req.Error(err)
		req.Equal(KindNotFound, KindOf(err))
	}
}

func TestStore_Signup_PastCapacity_Allowed(t *testing.T) {
	req := require.New(t)
	store := NewStore(map[string]Activity{
		"Tiny Club": {MaxParticipants: 1, Participants: []string{"a@mergington.edu"}},
	})

	// Capacity is advisory only
	req.NoError(store.Signup("Tiny Club", "b@mergington.edu"))
	req.Len(store.List()["Tiny Club"].Participants, 2)
}

func TestStore_Unregister_RemovesSingleEntry(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	req.NoError(store.Unregister("Chess Club", "michael@mergington.edu"))
	req.Equal([]string{"daniel@mergington.edu"}, store.List()["Chess Club"].Participants)
}

func TestStore_Unregister_AbsentEmail_Conflict(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	err := store.Unregister("Chess Club", "ghost@mergington.edu")
	req.Error(err)
	req.Equal(KindConflict, KindOf(err))
}

func TestStore_Unregister_UnknownActivity_NotFound(t *testing.T) {
	req := require.New(t)
	store := seedStore()

	err := store.Unregister("Knitting Circle", "michael@mergington.edu")
	req.Error(err)
	req.Equal(KindNotFound, KindOf(err))
}

func TestStore_SignupThenUnregister_RoundTrip(t *testing.T) {
	req := require.New(t)
	store := seedStore()
	before := store.List()["Chess Club"].Participants

	req.NoError(store.Signup("Chess Club", "ava@mergington.edu"))
	req.NoError(store.Unregister("Chess Club", "ava@mergington.edu"))

	req.Equal(before, store.List()["Chess Club"].Participants)
}

func TestError_KindOf_ForeignError(t *testing.T) {
	req := require.New(t)
	req.Equal(KindUnknown, KindOf(plainError{}))
}

type plainError struct{}

func (plainError) Error() string { return "boom" }

func TestError_Details(t *testing.T) {
	req := require.New(t)

	req.Equal("Activity not found", NotFoundError("Chess Club").Detail())
	req.Equal(
		"ava@mergington.edu is already signed up for Chess Club",
		AlreadySignedUpError("Chess Club", "ava@mergington.edu").Detail(),
	)
	req.Equal(
		"ava@mergington.edu is not registered for Chess Club",
		NotRegisteredError("Chess Club", "ava@mergington.edu").Detail(),
	)
}
