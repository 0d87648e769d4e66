package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rfp-manager/internal/types"
)

// mockStore returns canned records for dispatch tests.
type mockStore struct {
	rfp     *types.RFP
	vendors []types.Vendor
	rfpErr  error
}

func (m *mockStore) GetRFP(_ context.Context, _ uuid.UUID) (*types.RFP, error) {
	return m.rfp, m.rfpErr
}

func (m *mockStore) ResolveVendors(_ context.Context, _ []uuid.UUID) ([]types.Vendor, error) {
	return m.vendors, nil
}

// mockTransport records sends and fails the addresses listed in failFor.
type mockTransport struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]bool
	failAll bool
}

func (m *mockTransport) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls += 1
	if m.failAll || m.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func vendor(email string) types.Vendor {
	return types.Vendor{ID: uuid.New(), Name: "Vendor " + email, Email: email}
}

func testRFP() *types.RFP {
	budget := 50000.0
	return &types.RFP{
		ID:           uuid.New(),
		Title:        "Laptops",
		Requirements: []string{"16GB RAM", "SSD"},
		Budget:       &budget,
	}
}

func someVendorIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestDispatch_EmptyVendorIDs(t *testing.T) {
	transport := &mockTransport{}
	d := NewDispatcher(&mockStore{rfp: testRFP()}, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), nil)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, outcome)
	assert.Equal(t, 0, transport.calls)
}

func TestDispatch_RFPNotFound(t *testing.T) {
	transport := &mockTransport{}
	d := NewDispatcher(&mockStore{rfp: nil, vendors: []types.Vendor{vendor("a@x.com")}}, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(1))

	require.Error(t, err)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Nil(t, outcome)
	assert.Equal(t, 0, transport.calls)
}

func TestDispatch_NoVendorsResolved(t *testing.T) {
	transport := &mockTransport{}
	d := NewDispatcher(&mockStore{rfp: testRFP(), vendors: []types.Vendor{}}, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(2))

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "no valid vendors found")
	assert.Nil(t, outcome)
	assert.Equal(t, 0, transport.calls)
}

// TestDispatch_AllSent covers the worked example: three vendors, one without
// an email. The email-less vendor appears in neither partition, only in the
// skipped list.
func TestDispatch_AllSent(t *testing.T) {
	noEmail := vendor("")
	store := &mockStore{
		rfp:     testRFP(),
		vendors: []types.Vendor{vendor("a@x.com"), noEmail, vendor("b@x.com")},
	}
	transport := &mockTransport{}
	d := NewDispatcher(store, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(3))

	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, outcome.SentTo)
	assert.Empty(t, outcome.FailedTo)
	assert.Equal(t, []string{noEmail.ID.String()}, outcome.Skipped)
	assert.Equal(t, StatusAllSent, outcome.Status)
	assert.Equal(t, 2, transport.calls)
}

func TestDispatch_PartialSent(t *testing.T) {
	store := &mockStore{
		rfp:     testRFP(),
		vendors: []types.Vendor{vendor("a@x.com"), vendor("b@x.com"), vendor("c@x.com")},
	}
	transport := &mockTransport{failFor: map[string]bool{"b@x.com": true}}
	d := NewDispatcher(store, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(3))

	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "c@x.com"}, outcome.SentTo)
	assert.Equal(t, []string{"b@x.com"}, outcome.FailedTo)
	assert.Equal(t, StatusPartialSent, outcome.Status)

	// One failure must not stop the remaining recipients.
	assert.Equal(t, 3, transport.calls)
}

// TestDispatch_AllFail verifies that zero successes is a fatal failure that
// still carries the full failure partition.
func TestDispatch_AllFail(t *testing.T) {
	noEmail := vendor("")
	store := &mockStore{
		rfp:     testRFP(),
		vendors: []types.Vendor{vendor("a@x.com"), noEmail, vendor("b@x.com")},
	}
	transport := &mockTransport{failAll: true}
	d := NewDispatcher(store, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(3))

	require.Error(t, err)
	assert.Nil(t, outcome)

	var dispatchErr *DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, "failed to send RFP emails", dispatchErr.Message)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, dispatchErr.FailedTo)
	assert.Equal(t, []string{noEmail.ID.String()}, dispatchErr.Skipped)
}

// TestDispatch_PartitionIsComplete checks |sentTo| + |failedTo| equals the
// number of resolved vendors with a non-empty email.
func TestDispatch_PartitionIsComplete(t *testing.T) {
	vendors := []types.Vendor{
		vendor("a@x.com"), vendor(""), vendor("b@x.com"),
		vendor("c@x.com"), vendor(""), vendor("d@x.com"),
	}
	store := &mockStore{rfp: testRFP(), vendors: vendors}
	transport := &mockTransport{failFor: map[string]bool{"a@x.com": true, "d@x.com": true}}
	d := NewDispatcher(store, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(6))

	require.NoError(t, err)
	assert.Len(t, outcome.SentTo, 2)
	assert.Len(t, outcome.FailedTo, 2)
	assert.Len(t, outcome.Skipped, 2)
	assert.Equal(t, 4, len(outcome.SentTo)+len(outcome.FailedTo))
}

// TestDispatch_DeterministicOrder runs a wide dispatch with bounded
// concurrency and checks the partition follows vendor resolution order, not
// completion order.
func TestDispatch_DeterministicOrder(t *testing.T) {
	emails := []string{
		"v0@x.com", "v1@x.com", "v2@x.com", "v3@x.com", "v4@x.com",
		"v5@x.com", "v6@x.com", "v7@x.com", "v8@x.com", "v9@x.com",
	}
	vendors := make([]types.Vendor, len(emails))
	for i, email := range emails {
		vendors[i] = vendor(email)
	}
	store := &mockStore{rfp: testRFP(), vendors: vendors}
	transport := &mockTransport{}
	d := NewDispatcher(store, transport, WithMaxConcurrent(5))

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(len(emails)))

	require.NoError(t, err)
	assert.Equal(t, emails, outcome.SentTo)
	assert.Equal(t, StatusAllSent, outcome.Status)
}

func TestDispatch_StoreError(t *testing.T) {
	transport := &mockTransport{}
	d := NewDispatcher(&mockStore{rfpErr: errors.New("connection reset")}, transport)

	outcome, err := d.Dispatch(context.Background(), uuid.New(), someVendorIDs(1))

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Equal(t, 0, transport.calls)
}
