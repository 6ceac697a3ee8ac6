package services

import (
	"testing"
	"time"

	"crm-service/internal/firebase"
	"crm-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id string, data map[string]interface{}) firebase.Document {
	return firebase.Document{ID: id, Data: data}
}

func TestNormalizeRemoteCustomer_PriorityOrder(t *testing.T) {
	rc := NormalizeRemoteCustomer(doc("doc-1", map[string]interface{}{
		"userId":      "from-userId",
		"uid":         "from-uid",
		"mail":        "second@example.com",
		"email":       "first@example.com",
		"mobile":      "555-3",
		"phoneNumber": "555-2",
		"addressCity": "Springfield",
		"segment":     "VIP",
		"notes":       "likes blue",
		"photoURL":    "https://img/photo.png",
		"logo":        "https://img/logo.png",
		"displayName": "Display",
		"fullName":    "Full Name",
	}))

	assert.Equal(t, "from-uid", rc.ExternalID)
	assert.Equal(t, "first@example.com", rc.Email)
	assert.Equal(t, "555-2", rc.Phone)
	assert.Equal(t, "Springfield", rc.City)
	assert.Equal(t, models.TagVIP, rc.Tag)
	assert.Equal(t, "likes blue", rc.Notes)
	assert.Equal(t, "https://img/logo.png", rc.LogoURL)
	assert.Equal(t, "Full Name", rc.Name)
}

func TestNormalizeRemoteCustomer_DocumentIDIsLastExternalIDCandidate(t *testing.T) {
	rc := NormalizeRemoteCustomer(doc("doc-9", map[string]interface{}{"uid": "  "}))
	assert.Equal(t, "doc-9", rc.ExternalID)
	assert.Equal(t, "doc-9", rc.Key())
}

func TestNormalizeRemoteCustomer_NameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"first and last", map[string]interface{}{"firstName": "Ada", "lastName": "Lovelace"}, "Ada Lovelace"},
		{"first only", map[string]interface{}{"firstName": "Ada"}, "Ada"},
		{"email", map[string]interface{}{"email": "ada@example.com", "phone": "1"}, "ada@example.com"},
		{"phone", map[string]interface{}{"phone": "555-1"}, "555-1"},
		{"placeholder", map[string]interface{}{}, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRemoteCustomer(doc("d", tt.data)).Name)
		})
	}
}

func TestNormalizeRemoteCustomer_DropsUnknownTag(t *testing.T) {
	rc := NormalizeRemoteCustomer(doc("d", map[string]interface{}{"tag": "gold"}))
	assert.Empty(t, rc.Tag)
}

func TestNormalizeRemoteCustomer_NumericUID(t *testing.T) {
	rc := NormalizeRemoteCustomer(doc("d", map[string]interface{}{"uid": float64(1234)}))
	assert.Equal(t, "1234", rc.ExternalID)
}

func TestRemoteCustomer_ApplyToOverwritesPresentFieldsOnly(t *testing.T) {
	c := &models.Customer{Name: "Old", Email: "old@example.com", Phone: "111", City: "Paris"}
	rc := RemoteCustomer{ExternalID: "u1", Name: "New", Phone: "222"}

	changed := rc.ApplyTo(c)

	assert.Equal(t, "New", c.Name)
	assert.Equal(t, "u1", c.ExternalID)
	assert.Equal(t, "old@example.com", c.Email)
	assert.Equal(t, "222", c.Phone)
	assert.Equal(t, "Paris", c.City)
	assert.ElementsMatch(t, []string{"name", "firebaseUid", "phone"}, changed)

	assert.Empty(t, rc.ApplyTo(c))
}

func TestNormalizeRemoteOrder_OwnerPriority(t *testing.T) {
	when := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"userId first", map[string]interface{}{"userId": "a", "uid": "b", "createdAt": when}, "a"},
		{"uid", map[string]interface{}{"uid": "b", "user": "c", "createdAt": when}, "b"},
		{"user string", map[string]interface{}{"user": "c", "createdAt": when}, "c"},
		{"nested customer uid", map[string]interface{}{"customer": map[string]interface{}{"uid": "d"}, "createdAt": when}, "d"},
		{"customerUid", map[string]interface{}{"customerUid": "e", "createdAt": when}, "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := NormalizeRemoteOrder(doc("o", tt.data))
			require.True(t, ok)
			assert.Equal(t, tt.want, order.OwnerID)
		})
	}
}

func TestNormalizeRemoteOrder_TimestampShapes(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
	}{
		{"time value", want},
		{"time pointer", &want},
		{"epoch millis int64", want.UnixMilli()},
		{"epoch millis float", float64(want.UnixMilli())},
		{"numeric string", "1710498600000"},
		{"rfc3339", "2024-03-15T10:30:00Z"},
		{"rfc3339 offset", "2024-03-15T12:30:00+02:00"},
		{"naive datetime", "2024-03-15T10:30:00"},
		{"serialized timestamp", map[string]interface{}{"_seconds": float64(want.Unix()), "_nanoseconds": float64(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := NormalizeRemoteOrder(doc("o", map[string]interface{}{"uid": "u1", "createdAt": tt.value}))
			require.True(t, ok)
			assert.True(t, want.Equal(order.PlacedAt), order.PlacedAt.String())
		})
	}
}

func TestNormalizeRemoteOrder_TimestampKeyPriority(t *testing.T) {
	order, ok := NormalizeRemoteOrder(doc("o", map[string]interface{}{
		"uid":       "u1",
		"createdAt": "",
		"timestamp": "2024-01-01",
		"placedAt":  "2025-01-01",
	}))
	require.True(t, ok)
	assert.Equal(t, 2024, order.PlacedAt.Year())
}

func TestNormalizeRemoteOrder_Dropped(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{"no owner", map[string]interface{}{"createdAt": time.Now()}},
		{"no timestamp", map[string]interface{}{"uid": "u1"}},
		{"garbage timestamp", map[string]interface{}{"uid": "u1", "createdAt": "yesterday"}},
		{"unsupported type", map[string]interface{}{"uid": "u1", "createdAt": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NormalizeRemoteOrder(doc("o", tt.data))
			assert.False(t, ok)
		})
	}
}

func TestNormalizeRemoteStaff_Claims(t *testing.T) {
	tests := []struct {
		name         string
		data         map[string]interface{}
		wantEmployee bool
		wantAdmin    bool
	}{
		{"active admin", map[string]interface{}{"active": true, "role": "admin"}, true, true},
		{"status active staff", map[string]interface{}{"status": "active", "role": "sales"}, true, false},
		{"inactive admin", map[string]interface{}{"active": false, "role": "admin"}, false, false},
		{"empty", map[string]interface{}{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staff := NormalizeRemoteStaff(doc("uid-1", tt.data))
			assert.Equal(t, "uid-1", staff.UID)

			claims := staff.Claims()
			assert.Equal(t, tt.wantEmployee, claims["employee"])
			assert.Equal(t, tt.wantAdmin, claims["admin"])
		})
	}
}
