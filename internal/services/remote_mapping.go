package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"crm-service/internal/firebase"
	"crm-service/internal/models"
)

// Source keys per target field, highest priority first. The first key holding
// a non-empty value wins. Dotted keys descend into nested maps.
var (
	customerExternalIDKeys = []string{"uid", "userId", "userUID"}
	customerNameKeys       = []string{"name", "fullName", "displayName"}
	customerEmailKeys      = []string{"email", "mail"}
	customerPhoneKeys      = []string{"phone", "phoneNumber", "mobile"}
	customerCityKeys       = []string{"city", "addressCity"}
	customerTagKeys        = []string{"tag", "segment"}
	customerNotesKeys      = []string{"notes"}
	customerLogoKeys       = []string{"logoUrl", "logo", "photoURL"}

	orderOwnerKeys     = []string{"userId", "uid", "userUID", "user", "customer.uid", "customerUid"}
	orderTimestampKeys = []string{"createdAt", "created_at", "timestamp", "placedAt"}
)

const defaultRemoteName = "User"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RemoteCustomer is a users-collection document reduced to local fields.
type RemoteCustomer struct {
	DocumentID string
	ExternalID string
	Name       string
	Email      string
	Phone      string
	City       string
	Tag        string
	Notes      string
	LogoURL    string
}

// RemoteOrder is the part of an order document the reconciler uses.
type RemoteOrder struct {
	DocumentID string
	OwnerID    string
	PlacedAt   time.Time
}

// RemoteStaff is a staff-collection document keyed by auth uid.
type RemoteStaff struct {
	UID    string
	Active bool
	Role   string
}

func NormalizeRemoteCustomer(doc firebase.Document) RemoteCustomer {
	d := doc.Data
	rc := RemoteCustomer{
		DocumentID: doc.ID,
		ExternalID: firstString(d, customerExternalIDKeys...),
		Email:      firstString(d, customerEmailKeys...),
		Phone:      firstString(d, customerPhoneKeys...),
		City:       firstString(d, customerCityKeys...),
		Notes:      firstString(d, customerNotesKeys...),
		LogoURL:    firstString(d, customerLogoKeys...),
	}
	if rc.ExternalID == "" {
		rc.ExternalID = strings.TrimSpace(doc.ID)
	}

	if tag := strings.ToLower(firstString(d, customerTagKeys...)); models.IsValidTag(tag) {
		rc.Tag = tag
	}

	rc.Name = firstString(d, customerNameKeys...)
	if rc.Name == "" {
		rc.Name = joinNonEmpty(firstString(d, "firstName"), firstString(d, "lastName"))
	}
	if rc.Name == "" {
		rc.Name = rc.Email
	}
	if rc.Name == "" {
		rc.Name = rc.Phone
	}
	if rc.Name == "" {
		rc.Name = defaultRemoteName
	}

	return rc
}

// Key identifies the record in failure reports.
func (rc RemoteCustomer) Key() string {
	switch {
	case rc.ExternalID != "":
		return rc.ExternalID
	case rc.DocumentID != "":
		return rc.DocumentID
	default:
		return rc.Email
	}
}

// NewCustomer builds the local record for an unmatched remote customer.
func (rc RemoteCustomer) NewCustomer() *models.Customer {
	c := &models.Customer{}
	rc.ApplyTo(c)
	return c
}

// ApplyTo overwrites c with every field the remote record carries and reports
// the names of the fields that changed.
func (rc RemoteCustomer) ApplyTo(c *models.Customer) []string {
	var changed []string
	set := func(field string, dst *string, value string) {
		if value == "" || *dst == value {
			return
		}
		*dst = value
		changed = append(changed, field)
	}

	set("name", &c.Name, rc.Name)
	set("firebaseUid", &c.ExternalID, rc.ExternalID)
	set("email", &c.Email, rc.Email)
	set("phone", &c.Phone, rc.Phone)
	set("city", &c.City, rc.City)
	set("tag", &c.Tag, rc.Tag)
	set("notes", &c.Notes, rc.Notes)
	set("logoUrl", &c.LogoURL, rc.LogoURL)

	return changed
}

// NormalizeRemoteOrder reports false when the document has no owner or no
// usable timestamp.
func NormalizeRemoteOrder(doc firebase.Document) (RemoteOrder, bool) {
	owner := firstString(doc.Data, orderOwnerKeys...)
	if owner == "" {
		return RemoteOrder{}, false
	}

	for _, key := range orderTimestampKeys {
		v, ok := lookup(doc.Data, key)
		if !ok || isBlank(v) {
			continue
		}
		if t, ok := parseTimestamp(v); ok {
			return RemoteOrder{DocumentID: doc.ID, OwnerID: owner, PlacedAt: t}, true
		}
		// The first present timestamp key decides.
		return RemoteOrder{}, false
	}

	return RemoteOrder{}, false
}

func NormalizeRemoteStaff(doc firebase.Document) RemoteStaff {
	active, _ := doc.Data["active"].(bool)
	status, _ := doc.Data["status"].(string)
	role, _ := doc.Data["role"].(string)

	return RemoteStaff{
		UID:    strings.TrimSpace(doc.ID),
		Active: active || status == "active",
		Role:   role,
	}
}

// Claims are the custom auth claims derived from the staff record.
func (rs RemoteStaff) Claims() map[string]interface{} {
	return map[string]interface{}{
		"employee": rs.Active,
		"admin":    rs.Active && rs.Role == "admin",
	}
}

func firstString(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := lookup(data, key)
		if !ok {
			continue
		}
		if s := stringValue(v); s != "" {
			return s
		}
	}
	return ""
}

func lookup(data map[string]interface{}, key string) (interface{}, bool) {
	if data == nil {
		return nil, false
	}
	if v, ok := data[key]; ok && v != nil {
		return v, true
	}

	head, rest, nested := strings.Cut(key, ".")
	if !nested {
		return nil, false
	}
	child, ok := data[head].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return lookup(child, rest)
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10)
		}
	}
	return ""
}

// parseTimestamp accepts time values, epoch milliseconds as numbers or numeric
// strings, date strings, and serialized {seconds, nanoseconds} maps.
func parseTimestamp(v interface{}) (time.Time, bool) {
	var t time.Time

	switch val := v.(type) {
	case time.Time:
		t = val
	case *time.Time:
		if val != nil {
			t = *val
		}
	case int:
		t = time.UnixMilli(int64(val))
	case int64:
		t = time.UnixMilli(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return time.Time{}, false
		}
		t = time.UnixMilli(int64(val))
	case string:
		parsed, ok := parseTimeString(val)
		if !ok {
			return time.Time{}, false
		}
		t = parsed
	case map[string]interface{}:
		secs, ok := firstNumber(val, "seconds", "_seconds")
		if !ok {
			return time.Time{}, false
		}
		nanos, _ := firstNumber(val, "nanoseconds", "_nanoseconds")
		t = time.Unix(int64(secs), int64(nanos))
	default:
		return time.Time{}, false
	}

	if t.IsZero() {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func firstNumber(data map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch n := data[key].(type) {
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case float64:
			return n, true
		}
	}
	return 0, false
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	}
	return false
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
