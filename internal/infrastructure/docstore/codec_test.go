package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type stamped struct {
	ID        string     `bson:"id"`
	CreatedAt time.Time  `bson:"created_at"`
	DueAt     *time.Time `bson:"due_at"`
}

func TestTimeIsStoredAsISOString(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 7000, time.UTC)

	raw, err := Marshal(stamped{ID: "x", CreatedAt: at})
	require.NoError(t, err)

	v := raw.Lookup("created_at")
	assert.Equal(t, bsontype.String, v.Type)
	assert.Equal(t, "2025-02-03T04:05:06.000007+00:00", v.StringValue())
	assert.Equal(t, bsontype.Null, raw.Lookup("due_at").Type)
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 7000, time.UTC)
	due := at.Add(24 * time.Hour)

	raw, err := Marshal(stamped{ID: "x", CreatedAt: at, DueAt: &due})
	require.NoError(t, err)

	var out stamped
	require.NoError(t, Unmarshal(raw, &out))
	assert.True(t, at.Equal(out.CreatedAt))
	require.NotNil(t, out.DueAt)
	assert.True(t, due.Equal(*out.DueAt))
}

func TestDecodeAcceptsLegacyValues(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"id":         "x",
		"created_at": "2024-11-05T10:00:00+00:00",
		"due_at":     time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var out stamped
	require.NoError(t, Unmarshal(raw, &out))
	assert.Equal(t, time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC), out.CreatedAt)
	require.NotNil(t, out.DueAt)
	assert.Equal(t, time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC), *out.DueAt)
}

func TestDecodeRejectsMalformedTimestamp(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"id": "x", "created_at": "yesterday"})
	require.NoError(t, err)

	var out stamped
	assert.Error(t, Unmarshal(raw, &out))
}

func TestMarshalValueUsesRegistry(t *testing.T) {
	v, err := MarshalValue(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, bsontype.String, v.Type)
}
