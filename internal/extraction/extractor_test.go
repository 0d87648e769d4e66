package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rfp-manager/internal/llm"
)

// fakeClient implements llm.Client with a canned response.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestExtractRFP_MissingAPIKey(t *testing.T) {
	draft, err := ExtractRFP(context.Background(), "need 20 laptops", "")

	require.Error(t, err)
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Nil(t, draft)
}

func TestExtractRFP_EmptyDescription(t *testing.T) {
	draft, err := ExtractRFP(context.Background(), "   ", "test-api-key")

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description", validationErr.Field)
	assert.Nil(t, draft)
}

func TestExtractWithClient_Conforming(t *testing.T) {
	client := &fakeClient{response: conformingDraft}

	draft, err := extractWithClient(context.Background(), client, "need 20 laptops")

	require.NoError(t, err)
	assert.Equal(t, "Laptops", draft.Title)
	assert.Equal(t, []string{"16GB RAM", "SSD"}, draft.Requirements)
	require.NotNil(t, draft.Budget)
	assert.Equal(t, 50000.0, *draft.Budget)
	require.NotNil(t, draft.DeliveryTime)
	assert.Equal(t, "4 weeks", *draft.DeliveryTime)
}

// TestExtractWithClient_NullBudget maps a null budget to an absent budget in
// the draft.
func TestExtractWithClient_NullBudget(t *testing.T) {
	client := &fakeClient{response: `{
		"title": "Paper", "requirements": [], "budget": null,
		"deliveryTime": null, "paymentTerms": null, "warranty": null
	}`}

	draft, err := extractWithClient(context.Background(), client, "need paper")

	require.NoError(t, err)
	assert.Nil(t, draft.Budget)
	assert.Nil(t, draft.DeliveryTime)
	assert.Nil(t, draft.PaymentTerms)
	assert.Nil(t, draft.Warranty)
	assert.NotNil(t, draft.Requirements)
	assert.Empty(t, draft.Requirements)
}

// TestExtractWithClient_FencedResponse strips markdown fences before
// validation, since models wrap JSON even when told not to.
func TestExtractWithClient_FencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n" + conformingDraft + "\n```"}

	draft, err := extractWithClient(context.Background(), client, "need 20 laptops")

	require.NoError(t, err)
	assert.Equal(t, "Laptops", draft.Title)
}

func TestExtractWithClient_ExtraKeyRejected(t *testing.T) {
	client := &fakeClient{response: `{
		"title": "Laptops", "requirements": [], "budget": null,
		"deliveryTime": null, "paymentTerms": null, "warranty": null,
		"confidence": 0.93
	}`}

	draft, err := extractWithClient(context.Background(), client, "need 20 laptops")

	require.Error(t, err)
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Nil(t, draft)
}

func TestExtractWithClient_ServiceFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("deadline exceeded")}

	draft, err := extractWithClient(context.Background(), client, "need 20 laptops")

	require.Error(t, err)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Nil(t, draft)
}

// TestExtractWithClient_PromptCarriesContract verifies the fixed instruction
// contract and the description are both in the prompt.
func TestExtractWithClient_PromptCarriesContract(t *testing.T) {
	client := &fakeClient{response: conformingDraft}

	_, err := extractWithClient(context.Background(), client, "need 20 laptops for the field team")

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "single JSON object only")
	assert.Contains(t, prompt, "Do not include any extra keys")
	assert.Contains(t, prompt, "need 20 laptops for the field team")
}
