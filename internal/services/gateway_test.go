package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayTokenizeSuccess(t *testing.T) {
	var gotAuth string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/tokens", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotForm = map[string]string{
			"number":    r.PostFormValue("card[number]"),
			"exp_month": r.PostFormValue("card[exp_month]"),
			"exp_year":  r.PostFormValue("card[exp_year]"),
			"cvc":       r.PostFormValue("card[cvc]"),
		}
		w.Write([]byte(`{"id":"tok_123"}`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL)
	token, err := client.Tokenize(context.Background(), "sk_test_abc", CardDetails{
		Name:   "J Doe",
		Number: "4242 4242 4242 4242",
		Expiry: "12/27",
		CVC:    "123",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok_123", token)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.Equal(t, "4242424242424242", gotForm["number"])
	assert.Equal(t, "12", gotForm["exp_month"])
	assert.Equal(t, "27", gotForm["exp_year"])
	assert.Equal(t, "123", gotForm["cvc"])
}

func TestGatewayTokenizeDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL)
	_, err := client.Tokenize(context.Background(), "sk_test_abc", CardDetails{
		Number: "4000000000000002",
		Expiry: "12/27",
		CVC:    "123",
	})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Your card was declined.", gwErr.Message)
}

func TestGatewayTokenizeBadExpiry(t *testing.T) {
	client := NewGatewayClient("http://localhost:0")
	_, err := client.Tokenize(context.Background(), "sk", CardDetails{Expiry: "1227"})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Contains(t, gwErr.Message, "MM/YY")
}
